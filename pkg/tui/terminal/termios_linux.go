// ABOUTME: Linux ioctl request numbers for reading and flushing-applying termios.

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios       = unix.TCGETS
	ioctlWriteTermiosFlush = unix.TCSETSF
)

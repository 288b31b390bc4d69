//go:build linux

package candefs

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// socketCAN implements Bus over Linux SocketCAN.
type socketCAN struct {
	fd     int
	closed chan struct{}
}

// DialSocketCAN opens a raw CAN socket bound to the given interface name
// (e.g. "can0"). The socket is non-blocking; Send and Receive poll the fd so
// Close can interrupt them.
func DialSocketCAN(iface string) (Bus, error) {
	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, unix.CAN_RAW)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}
	ifr, err := unix.NewIfreq(iface)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	if err := unix.IoctlIfreq(fd, unix.SIOCGIFINDEX, ifr); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("ioctl SIOCGIFINDEX", err)
	}
	sa := &unix.SockaddrCAN{Ifindex: int(int32(ifr.Uint32()))}
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("bind", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return &socketCAN{fd: fd, closed: make(chan struct{})}, nil
}

func (s *socketCAN) Close() error {
	select {
	case <-s.closed:
		return nil
	default:
	}
	close(s.closed)
	return unix.Close(s.fd)
}

// Send writes one frame using the Linux can_frame binary layout.
func (s *socketCAN) Send(frame Frame) error {
	buf, err := frame.MarshalBinary()
	if err != nil {
		return err
	}
	for {
		select {
		case <-s.closed:
			return ErrClosed
		default:
		}
		n, werr := unix.Write(s.fd, buf)
		if werr == nil {
			if n != len(buf) {
				return errors.New("candefs: short write")
			}
			return nil
		}
		if werr == unix.EAGAIN || werr == unix.EWOULDBLOCK {
			if err := s.wait(unix.POLLOUT); err != nil {
				return err
			}
			continue
		}
		return os.NewSyscallError("write", werr)
	}
}

// Receive reads one frame in the Linux can_frame binary layout.
func (s *socketCAN) Receive() (Frame, error) {
	var f Frame
	buf := make([]byte, 16)
	for {
		select {
		case <-s.closed:
			return Frame{}, ErrClosed
		default:
		}
		n, rerr := unix.Read(s.fd, buf)
		if rerr == nil {
			if n != len(buf) {
				return Frame{}, errors.New("candefs: short read")
			}
			if err := f.UnmarshalBinary(buf); err != nil {
				return Frame{}, err
			}
			return f, nil
		}
		if rerr == unix.EAGAIN || rerr == unix.EWOULDBLOCK {
			if err := s.wait(unix.POLLIN); err != nil {
				return Frame{}, err
			}
			continue
		}
		return Frame{}, os.NewSyscallError("read", rerr)
	}
}

// wait polls the fd for readiness with a short timeout so the closed channel
// is rechecked periodically.
func (s *socketCAN) wait(events int16) error {
	pfd := []unix.PollFd{{Fd: int32(s.fd), Events: events}}
	_, err := unix.Poll(pfd, 10)
	if err != nil && err != unix.EINTR {
		return os.NewSyscallError("poll", err)
	}
	return nil
}

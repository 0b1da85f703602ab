package constants

import (
	"net"

	"github.com/pkg/errors"
)

const (
	DataFormate = "2006-01-02 15:04:05"

	ApiServiceAddr = "0.0.0.0:8888"

	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	MaxCommentLength = 500
	MinCommentLength = 1

	MaxListLength = 100
)

// GetOutBoundIP resolves the local address used for outbound traffic.
func GetOutBoundIP() (ip string, err error) {
	conn, err := net.Dial("udp", "8.8.8.8:53")
	if err != nil {
		return "", errors.Wrap(err, "failed to get outbound ip")
	}
	defer conn.Close()
	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String(), nil
}

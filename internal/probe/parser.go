package probe

import (
	"fmt"

	"FlowScope/internal/core/model"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// ParsePacket decodes a raw packet and reduces it to a FlowRecord: the
// IPv4 endpoints, the on-wire byte count and the transport protocol name.
func ParsePacket(data []byte) (*model.FlowRecord, error) {
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)

	l := packet.Layer(layers.LayerTypeIPv4)
	if l == nil {
		// IPv6 flows are skipped for now, matching the capture scope.
		return nil, fmt.Errorf("not an IPv4 packet")
	}
	ipLayer := l.(*layers.IPv4)

	return &model.FlowRecord{
		SourceIP:      ipLayer.SrcIP.String(),
		DestinationIP: ipLayer.DstIP.String(),
		TotalBytes:    uint64(len(data)),
		Protocol:      ipLayer.Protocol.String(),
	}, nil
}

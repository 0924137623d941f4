//go:build !pcap
// +build !pcap

package pvrecnet

import (
	"context"
	"fmt"

	"github.com/banshee-data/pvrec/internal/pvrec"
	"github.com/banshee-data/pvrec/internal/pvrecio"
)

// ReplayPCAPFile is a stub used when PCAP support is disabled. Rebuild
// with -tags=pcap to enable PCAP file replay.
func ReplayPCAPFile(ctx context.Context, pcapFile string, udpPort int, params pvrec.Params, conv pvrecio.Converter) ([]pvrecio.BatchResult, error) {
	return nil, fmt.Errorf("pvrecnet: pcap support not enabled: rebuild with -tags=pcap")
}

//go:build !pcap
// +build !pcap

package pvrecnet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banshee-data/pvrec/internal/pvrec"
	"github.com/banshee-data/pvrec/internal/pvrecio"
)

func TestReplayPCAPFileStubReturnsError(t *testing.T) {
	_, err := ReplayPCAPFile(context.Background(), "nonexistent.pcap", 8000, pvrec.DefaultParams(), pvrecio.NewConverter())
	require.Error(t, err)
}

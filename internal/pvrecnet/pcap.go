//go:build pcap
// +build pcap

package pvrecnet

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"github.com/banshee-data/pvrec/internal/pvrec"
	"github.com/banshee-data/pvrec/internal/pvrecio"
)

// ReplayPCAPFile reads a previously captured UDP session from pcapFile,
// treating each UDP payload on udpPort as one detection-record line, and
// drives them through a fresh engine exactly as pvrecio.ProcessReader
// drives lines read from a text file. This function is only available
// when building with the 'pcap' build tag.
func ReplayPCAPFile(ctx context.Context, pcapFile string, udpPort int, params pvrec.Params, conv pvrecio.Converter) ([]pvrecio.BatchResult, error) {
	handle, err := pcap.OpenOffline(pcapFile)
	if err != nil {
		return nil, fmt.Errorf("pvrecnet: open pcap file %s: %w", pcapFile, err)
	}
	defer handle.Close()

	filterStr := fmt.Sprintf("udp port %d", udpPort)
	if err := handle.SetBPFFilter(filterStr); err != nil {
		return nil, fmt.Errorf("pvrecnet: set BPF filter %q: %w", filterStr, err)
	}
	log.Printf("pvrecnet: pcap BPF filter set: %s", filterStr)

	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())

	engine := pvrec.NewEngine(params)
	var results []pvrecio.BatchResult
	started := false
	curCam := 0
	packetCount := 0
	startTime := time.Now()

	flush := func() {
		if !started {
			return
		}
		engine.EndBatch()
		camID, objs := engine.Objects()
		if len(objs) > 0 {
			results = append(results, pvrecio.BatchResult{CamID: camID, Objects: objs})
		}
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("pvrecnet: replay stopping due to context cancellation (processed %d packets)", packetCount)
			flush()
			return results, ctx.Err()
		case packet := <-packetSource.Packets():
			if packet == nil {
				elapsed := time.Since(startTime)
				log.Printf("pvrecnet: pcap replay complete: %d packets in %v", packetCount, elapsed)
				flush()
				return results, nil
			}
			packetCount++

			udpLayer := packet.Layer(layers.LayerTypeUDP)
			if udpLayer == nil {
				continue
			}
			udp, ok := udpLayer.(*layers.UDP)
			if !ok {
				continue
			}
			payload := udp.Payload
			if len(payload) == 0 {
				continue
			}

			rec, err := pvrecio.ParseLine(string(payload), conv)
			if err != nil {
				log.Printf("pvrecnet: packet %d: skipping malformed payload: %v", packetCount, err)
				continue
			}
			if !started || rec.CamID != curCam {
				flush()
				engine.BeginBatch(rec.CamID)
				curCam = rec.CamID
				started = true
			}
			engine.PushDetection(rec.Detection)
		}
	}
}

// Package pvrecnet replays a previously captured UDP telemetry session (one
// detection line per UDP payload) through the recognizer for offline
// testing. PCAP decoding is only built with the "pcap" build tag, mirroring
// the teacher's internal/lidar/network package; a stub keeps the rest of
// the module building without gopacket's pcap bindings installed.
package pvrecnet

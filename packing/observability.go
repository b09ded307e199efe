package packing

import (
	"github.com/eth2030/discv5/log"
	"github.com/eth2030/discv5/metrics"
	"github.com/eth2030/discv5/packet"
)

// Metrics and Logger are optional, nil-safe sinks a caller can point at
// its own registry/logger. Both stay nil (silent) by default; unlike a
// process-wide default registry, these are per-package injection points
// since this library has no single process-wide owner.
var (
	Metrics *metrics.Registry
	Logger  *log.Logger
)

func flagName(flag packet.Flag) string {
	switch flag {
	case packet.FlagOrdinary:
		return "ordinary"
	case packet.FlagWhoareyou:
		return "whoareyou"
	case packet.FlagHandshake:
		return "handshake"
	default:
		return "unknown"
	}
}

func recordPacked(flag packet.Flag) {
	if Metrics != nil {
		Metrics.Counter("packets_packed_total{flag=" + flagName(flag) + "}").Inc()
	}
	if Logger != nil {
		Logger.Module("packing").Debug("packed packet", "flag", flagName(flag))
	}
}

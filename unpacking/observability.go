package unpacking

import (
	"github.com/eth2030/discv5/log"
	"github.com/eth2030/discv5/metrics"
	"github.com/eth2030/discv5/packet"
)

// Metrics and Logger are optional, nil-safe sinks; see packing's
// identical convention.
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

func recordUnpacked(flag packet.Flag) {
	if Metrics != nil {
		Metrics.Counter("packets_unpacked_total{flag=" + flagName(flag) + "}").Inc()
	}
	if Logger != nil {
		Logger.Module("unpacking").Debug("unpacked packet", "flag", flagName(flag))
	}
}

func recordUnpackFailure(reason string) {
	if Metrics != nil {
		Metrics.Counter("unpack_failures_total{reason=" + reason + "}").Inc()
	}
	if Logger != nil {
		Logger.Module("unpacking").Warn("unpack failed", "reason", reason)
	}
}

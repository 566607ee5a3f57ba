package oscclock

import (
	"log"
	"math"
	"time"

	"github.com/hypebeast/go-osc/osc"

	"github.com/vsariola/timecalc"
)

const (
	PositionAddress = "/timecalc/position"
	TempoAddress    = "/timecalc/tempo"
)

// Sender is implemented by *osc.Client.
type Sender interface {
	Send(packet osc.Packet) error
}

// PositionMessage encodes a position as the bar number (int32, from 0), the
// beat within that bar (float64, from 0) and the position in milliseconds
// (float64).
func PositionMessage(ctx timecalc.Context, ticks timecalc.Ticks) *osc.Message {
	barTicks := timecalc.Bars(1).Ticks(ctx.TimeSig, ctx.PPQN)
	bar := int64(0)
	if barTicks > 0 {
		bar = int64(math.Floor(float64(ticks) / float64(barTicks)))
	}
	inBar := ticks - timecalc.Ticks(bar)*barTicks
	return osc.NewMessage(PositionAddress,
		int32(bar),
		inBar.Beats(ctx.PPQN),
		ctx.MsFromTicks(ticks).Value(),
	)
}

// Broadcast sends the position of the clock at now.
func Broadcast(s Sender, c *Clock, now time.Time) error {
	return s.Send(PositionMessage(c.Context(), c.Position(now)))
}

// NewDispatcher returns a dispatcher that retimes the clock on
// "/timecalc/tempo <bpm>". Malformed messages are logged and dropped.
func NewDispatcher(c *Clock) *osc.StandardDispatcher {
	d := osc.NewStandardDispatcher()
	d.AddMsgHandler(TempoAddress, func(msg *osc.Message) {
		if len(msg.Arguments) != 1 {
			log.Printf("Expected 1 argument for %s, got: %d", TempoAddress, len(msg.Arguments))
			return
		}
		var bpm float64
		switch v := msg.Arguments[0].(type) {
		case float32:
			bpm = float64(v)
		case float64:
			bpm = v
		case int32:
			bpm = float64(v)
		default:
			log.Printf("%s argument not a number", TempoAddress)
			return
		}
		if err := c.Sync(bpm, time.Now()); err != nil {
			log.Printf("Could not set tempo: %v", err)
		}
	})
	return d
}

// NewServer returns an OSC server listening on the UDP address addr, e.g.
// "127.0.0.1:8765", for messages to the clock.
func NewServer(addr string, c *Clock) *osc.Server {
	return &osc.Server{
		Addr:       addr,
		Dispatcher: NewDispatcher(c),
	}
}

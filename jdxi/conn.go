package jdxi

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// DefaultSendGap spaces successive SysEx writes so the JD-Xi's input buffer
// is not overrun by a burst of slider moves.
const DefaultSendGap = 20 * time.Millisecond

// Conn is an explicit handle on one JD-Xi: an open output port, the
// parameter registry, and the store of last-known values fed by the input
// listener. There is no package-level connection; the composition root owns
// the lifecycle.
type Conn struct {
	devID byte
	out   drivers.Out
	reg   *Registry
	store *Store

	sendMu   sync.Mutex
	sendGap  time.Duration
	lastSend time.Time

	// OnUpdate, when set before Listen, is invoked for every stored
	// parameter update, on the MIDI input goroutine.
	OnUpdate func(Address, int)
	// OnDecodeError, when set, sees every dropped incoming message.
	OnDecodeError func(error)
}

// OpenConn opens the given output port and returns a connection handle plus
// a closer for both the port and the driver.
func OpenConn(devID byte, portIndex int, reg *Registry) (*Conn, func(), error) {
	outs, err := drivers.Outs()
	if err != nil {
		return nil, nil, err
	}
	if portIndex < 0 || portIndex >= len(outs) {
		return nil, nil, fmt.Errorf("output port index %d out of range", portIndex)
	}

	out := outs[portIndex]
	if err := out.Open(); err != nil {
		return nil, nil, err
	}

	closer := func() {
		_ = out.Close()
		drivers.Close()
	}
	return &Conn{
		devID:   devID,
		out:     out,
		reg:     reg,
		store:   NewStore(),
		sendGap: DefaultSendGap,
	}, closer, nil
}

// Store exposes the last-known parameter values.
func (c *Conn) Store() *Store { return c.store }

// SetSendGap adjusts the minimum spacing between successive writes. Zero
// disables pacing.
func (c *Conn) SetSendGap(gap time.Duration) {
	c.sendMu.Lock()
	c.sendGap = gap
	c.sendMu.Unlock()
}

// Send transmits raw bytes on the output port, delaying as needed to keep
// the configured gap since the previous write.
func (c *Conn) Send(data []byte) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if wait := c.sendGap - time.Since(c.lastSend); wait > 0 {
		time.Sleep(wait)
	}
	if !c.out.IsOpen() {
		if err := c.out.Open(); err != nil {
			return err
		}
	}
	err := c.out.Send(data)
	c.lastSend = time.Now()
	return err
}

// SendMessage transmits a non-SysEx MIDI message (notes for auditioning a
// patch, mostly).
func (c *Conn) SendMessage(msg midi.Message) error {
	return c.Send(msg.Bytes())
}

// SetParameter encodes and sends one named parameter write.
func (c *Conn) SetParameter(synth SynthType, name string, value, partial int) error {
	data, err := Encode(c.reg, synth, name, value, partial)
	if err != nil {
		return err
	}
	return c.Send(data)
}

// RequestParameter asks the device to report one named parameter. The reply
// arrives through the listener and lands in the store.
func (c *Conn) RequestParameter(synth SynthType, name string, partial int) error {
	p, addr, err := c.reg.Resolve(synth, name, partial)
	if err != nil {
		return err
	}
	data, err := BuildDataRequest(addr, p.Width)
	if err != nil {
		return err
	}
	return c.Send(data)
}

// CurrentValue reads the last-known raw value for one named parameter.
func (c *Conn) CurrentValue(synth SynthType, name string, partial int) (int, bool) {
	_, addr, err := c.reg.Resolve(synth, name, partial)
	if err != nil {
		return 0, false
	}
	return c.store.Get(addr)
}

// HandleIncoming decodes one raw message and applies it: parameter events
// update the store and fire OnUpdate, decode failures go to OnDecodeError
// and are otherwise dropped. Safe to call from the MIDI driver goroutine.
func (c *Conn) HandleIncoming(raw []byte) {
	ev, err := Decode(raw, c.reg)
	if err != nil {
		if c.OnDecodeError != nil {
			c.OnDecodeError(err)
		}
		return
	}
	if ev.Kind != EventParameter {
		return
	}
	c.store.Set(ev.Addr, ev.Value)
	if c.OnUpdate != nil {
		c.OnUpdate(ev.Addr, ev.Value)
	}
}

// Listen registers the decoder as the SysEx callback on an input port and
// returns a stop function.
func (c *Conn) Listen(in drivers.In) (func(), error) {
	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		if len(msg) > 0 && msg[0] == sysExStart {
			c.HandleIncoming(msg)
		}
	}, midi.UseSysEx(), midi.SysExBufferSize(2048))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for SysEx: %w", err)
	}
	return stop, nil
}

// Identify runs the identity-request handshake against an input port and
// returns the parsed device identity, or times out.
func (c *Conn) Identify(in drivers.In, timeout time.Duration) (*Identity, error) {
	msgCh := make(chan midi.Message, 1)

	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		if len(msg) > 0 && msg[0] == sysExStart {
			select {
			case msgCh <- msg:
			default:
			}
		}
	}, midi.UseSysEx(), midi.SysExBufferSize(2048))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for identity reply: %w", err)
	}
	defer stop()

	if err := c.Send(BuildIdentityRequest()); err != nil {
		return nil, fmt.Errorf("failed to send identity request: %w", err)
	}

	deadline := time.After(timeout)
	for {
		select {
		case msg := <-msgCh:
			ev, err := Decode(msg, c.reg)
			if err != nil || ev.Kind != EventIdentity {
				continue // other traffic may interleave with the reply
			}
			return ev.Identity, nil
		case <-deadline:
			return nil, errors.New("timed out waiting for identity reply")
		}
	}
}

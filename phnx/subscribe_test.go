package phnx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	candefs "github.com/ISC-Project-Phoenix/phnx-candefs"
)

func recvMessage(t *testing.T, ch <-chan Message) Message {
	t.Helper()
	select {
	case m, ok := <-ch:
		require.True(t, ok, "channel closed")
		return m
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for message")
		return nil
	}
}

func TestSubscribeMessages(t *testing.T) {
	bus := candefs.NewLoopbackBus()
	defer bus.Close()
	mux := candefs.NewMux(bus.Open())
	defer mux.Close()

	msgs, cancel := SubscribeMessages(mux, 4)
	defer cancel()

	producer := bus.Open()
	defer producer.Close()

	f, err := Marshal(EncoderCount{Count: 7, Velocity: 1.5})
	require.NoError(t, err)
	require.NoError(t, producer.Send(f))

	// A frame off-catalog must not surface.
	require.NoError(t, producer.Send(candefs.Frame{ID: 0x500, Extended: true, Len: 2}))

	f, err = Marshal(SetBrake{Percent: 40})
	require.NoError(t, err)
	require.NoError(t, producer.Send(f))

	ec, ok := recvMessage(t, msgs).(EncoderCount)
	require.True(t, ok)
	assert.Equal(t, int32(7), ec.Count)
	assert.InDelta(t, 1.5, ec.Velocity, 0.01)

	sb, ok := recvMessage(t, msgs).(SetBrake)
	require.True(t, ok)
	assert.Equal(t, uint8(40), sb.Percent)
}

func TestSubscribeKind(t *testing.T) {
	bus := candefs.NewLoopbackBus()
	defer bus.Close()
	mux := candefs.NewMux(bus.Open())
	defer mux.Close()

	angles, cancel := SubscribeKind(mux, KindGetAngle, 2)
	defer cancel()

	producer := bus.Open()
	defer producer.Close()

	// Other kinds are filtered out before decode.
	f, err := Marshal(SetSpeed{Percent: 10})
	require.NoError(t, err)
	require.NoError(t, producer.Send(f))

	f, err = Marshal(GetAngle{Angle: -3.5})
	require.NoError(t, err)
	require.NoError(t, producer.Send(f))

	ga, ok := recvMessage(t, angles).(GetAngle)
	require.True(t, ok)
	assert.InDelta(t, -3.5, ga.Angle, 0.01)

	select {
	case m := <-angles:
		t.Fatalf("unexpected message %T", m)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribe_ChannelClosesWithMux(t *testing.T) {
	bus := candefs.NewLoopbackBus()
	defer bus.Close()
	mux := candefs.NewMux(bus.Open())

	msgs, cancel := SubscribeMessages(mux, 1)
	defer cancel()

	require.NoError(t, mux.Close())
	select {
	case _, ok := <-msgs:
		assert.False(t, ok, "channel should close after mux close")
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for channel close")
	}
}

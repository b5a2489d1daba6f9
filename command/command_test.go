// SPDX-License-Identifier: Unlicense OR MIT

package command

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl/gl"
)

func TestTagNames(t *testing.T) {
	for i := 0; i < len(tagNames); i++ {
		if tagNames[i] == "" {
			t.Errorf("tag %d has no name", i)
		}
	}
	assert.Equal(t, "DrawArrays", DrawArrays{}.Tag().String())
	assert.Equal(t, "Unknown", Tag(255).String())
}

func TestChannelFIFO(t *testing.T) {
	inbox := make(chan Message, 8)
	c := NewChannel(inbox, make(chan struct{}))
	require.NoError(t, c.Send(1, BindBuffer{Target: gl.ARRAY_BUFFER, ID: 3}))
	require.NoError(t, c.Send(1, DrawArrays{Mode: gl.TRIANGLES, Count: 3}))
	first, second := <-inbox, <-inbox
	assert.Equal(t, TagBindBuffer, first.Command.Tag())
	assert.Equal(t, TagDrawArrays, second.Command.Tag())
	assert.Equal(t, ContextID(1), second.Context)
}

func TestCallReply(t *testing.T) {
	inbox := make(chan Message, 1)
	c := NewChannel(inbox, make(chan struct{}))
	go func() {
		m := <-inbox
		m.Command.(GetParameter).Send(ParamValue{Ints: [4]int32{7}})
	}()
	r := NewReply[ParamValue]()
	v, err := Call(c, 1, GetParameter{Param: gl.DEPTH_FUNC, Kind: ParamInt, Reply: r}, r)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v.Ints[0])
}

func TestCallFailure(t *testing.T) {
	inbox := make(chan Message, 1)
	c := NewChannel(inbox, make(chan struct{}))
	boom := errors.New("boom")
	go func() {
		m := <-inbox
		m.Command.(Query).Fail(boom)
	}()
	r := NewReply[struct{}]()
	_, err := Call(c, 1, Finish{Reply: r}, r)
	require.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrContextLost))
}

func TestClosedChannel(t *testing.T) {
	done := make(chan struct{})
	close(done)
	c := NewChannel(make(chan Message), done)
	require.ErrorIs(t, c.Send(1, Flush{}), ErrContextLost)
	r := NewReply[struct{}]()
	_, err := Call(c, 1, Finish{Reply: r}, r)
	require.ErrorIs(t, err, ErrContextLost)
}

func TestLostWhileWaiting(t *testing.T) {
	inbox := make(chan Message, 1)
	done := make(chan struct{})
	c := NewChannel(inbox, done)
	go func() {
		<-inbox
		close(done)
	}()
	r := NewReply[struct{}]()
	_, err := Call(c, 1, Finish{Reply: r}, r)
	require.ErrorIs(t, err, ErrContextLost)
}

func TestReplyOnce(t *testing.T) {
	r := NewReply[int32]()
	r.Send(1)
	r.Send(2)
	v, err := r.Wait(nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
}

func TestZeroReply(t *testing.T) {
	var r Reply[int32]
	r.Send(1)
	_, err := r.Wait(nil)
	require.ErrorIs(t, err, ErrNoReply)
}

func TestRectImage(t *testing.T) {
	assert.Equal(t, image.Rect(1, 2, 4, 6), Rect{X: 1, Y: 2, Width: 3, Height: 4}.Image())
	// The far corner is computed without wrapping.
	r := Rect{X: math.MaxInt32, Y: 0, Width: 2, Height: 1}.Image()
	assert.Equal(t, 2, r.Dx())
	assert.True(t, r.Intersect(image.Rect(0, 0, 4, 4)).Empty())
}

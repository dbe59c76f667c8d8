package particles

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleSize(t *testing.T) {
	var p Particle
	assert.Equal(t, 32, p.Size())
}

func TestNewBallStaysInsideRadius(t *testing.T) {
	ps := NewBall(chunkSize+500, 200, 7, 4)
	require.Len(t, ps, chunkSize+500)

	for i, p := range ps {
		require.LessOrEqual(t, p.Position.Vec3().Len(), float32(200.001), "particle %d", i)
		require.Equal(t, float32(1), p.Position.W())
		require.Equal(t, mgl32.Vec4{}, p.Velocity)
	}
}

func TestNewBallIsDeterministic(t *testing.T) {
	a := NewBall(chunkSize*2+3, 100, 42, 1)
	b := NewBall(chunkSize*2+3, 100, 42, 3)
	assert.Equal(t, a, b, "worker count must not change the output")

	c := NewBall(chunkSize*2+3, 100, 43, 3)
	assert.NotEqual(t, a[0], c[0])
}

func TestNewBallEmpty(t *testing.T) {
	assert.Nil(t, NewBall(0, 1, 1, 1))
	assert.Nil(t, Particles(nil).Bytes())
}

func TestBytes(t *testing.T) {
	ps := Particles{
		{Position: mgl32.Vec4{1, 2, 3, 1}},
		{Position: mgl32.Vec4{4, 5, 6, 1}, Velocity: mgl32.Vec4{0, -1, 0, 0}},
	}
	buf := ps.Bytes()
	require.Len(t, buf, 64)
	assert.Equal(t, float32(4), math.Float32frombits(binary.LittleEndian.Uint32(buf[32:])))
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(buf[52:])))
}

type fakeInput struct {
	keys    map[int]bool
	buttons map[int]bool
	x, y    float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: map[int]bool{}, buttons: map[int]bool{}}
}

func (f *fakeInput) IsKeyPressed(key int) bool            { return f.keys[key] }
func (f *fakeInput) IsMouseButtonPressed(button int) bool { return f.buttons[button] }
func (f *fakeInput) CursorPosition() (float64, float64)   { return f.x, f.y }

func TestParamsPauseTogglesOnRelease(t *testing.T) {
	in := newFakeInput()
	cam := camera.NewCamera(1280, 720)
	p := NewParams()
	require.True(t, p.Running)

	in.keys[common.KeySpace] = true
	p.Update(in, cam, 1280, 720, 0.016)
	p.Update(in, cam, 1280, 720, 0.016)
	assert.True(t, p.Running, "holding the key does not toggle")

	in.keys[common.KeySpace] = false
	p.Update(in, cam, 1280, 720, 0.016)
	assert.False(t, p.Running)

	p.Update(in, cam, 1280, 720, 0.016)
	assert.False(t, p.Running)
	assert.Equal(t, float32(0.016), p.DT)
}

func TestParamsAttractorFollowsCursor(t *testing.T) {
	in := newFakeInput()
	cam := camera.NewCamera(1280, 720, camera.WithPosition(mgl32.Vec3{0, 0, 25}))
	p := NewParams()

	p.Update(in, cam, 1280, 720, 0.016)
	assert.False(t, p.Active)

	in.buttons[common.MouseButtonLeft] = true
	in.x, in.y = 640, 360
	p.Update(in, cam, 1280, 720, 0.016)
	require.True(t, p.Active)
	assert.InDeltaSlice(t, []float32{0, 0, 0}, p.CenterOfGravity[:], 1e-4)
}

type recordingSetter struct {
	values map[string]shader.UniformValue
	order  []string
	err    error
}

func (r *recordingSetter) SetUniform(name string, value shader.UniformValue) error {
	if r.err != nil {
		return r.err
	}
	if r.values == nil {
		r.values = map[string]shader.UniformValue{}
	}
	r.values[name] = value
	r.order = append(r.order, name)
	return nil
}

func TestParamsApply(t *testing.T) {
	p := NewParams()
	p.DT = 0.5

	rec := &recordingSetter{}
	require.NoError(t, p.Apply(rec))
	assert.Equal(t, []string{UniformDT, UniformIsRunning, UniformIsActive}, rec.order)
	assert.Equal(t, shader.Float(0.5), rec.values[UniformDT])
	assert.Equal(t, shader.Float(1), rec.values[UniformIsRunning])
	assert.Equal(t, shader.Float(0), rec.values[UniformIsActive])

	p.Active = true
	p.CenterOfGravity = mgl32.Vec3{1, 2, 3}
	rec = &recordingSetter{}
	require.NoError(t, p.Apply(rec))
	assert.Equal(t, shader.Vec3(mgl32.Vec3{1, 2, 3}), rec.values[UniformCenterOfGravity])
}

func TestParamsApplyError(t *testing.T) {
	p := NewParams()
	boom := errors.New("boom")
	err := p.Apply(&recordingSetter{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), UniformDT)
}

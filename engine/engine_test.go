package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/umbra-go/engine/light"
	"github.com/Carmen-Shannon/umbra-go/engine/scene"
	"github.com/stretchr/testify/assert"
)

func TestEngine_FrameLightsFollowSceneOrder(t *testing.T) {
	assert := assert.New(t)

	background := scene.NewScene(scene.WithLights(
		light.NewLight(light.LightTypeDirectional, light.WithName("sun")),
	))
	foreground := scene.NewScene(scene.WithLights(
		light.NewLight(light.LightTypePoint, light.WithName("lamp")),
		light.NewLight(light.LightTypeSpot, light.WithName("torch")),
	))

	e := NewEngine(
		WithScene(10, foreground),
		WithScene(0, background),
	).(*engine)

	lights := e.frameLights()
	if assert.Len(lights, 3) {
		assert.Equal("sun", lights[0].Light.Name())
		assert.Equal("lamp", lights[1].Light.Name())
		assert.Equal("torch", lights[2].Light.Name())
		assert.Equal(0, lights[0].Index)
		assert.Equal(2, lights[2].Index)
	}

	// Inactive scenes contribute nothing.
	foreground.SetActive(false)
	lights = e.frameLights()
	if assert.Len(lights, 1) {
		assert.Equal("sun", lights[0].Light.Name())
	}
}

func TestEngine_SceneRegistry(t *testing.T) {
	assert := assert.New(t)

	s := scene.NewScene(scene.WithName("level1"))
	e := NewEngine()

	e.AddScene(3, s)
	assert.Same(s, e.Scene(3))
	assert.Nil(e.Scene(99))
	assert.Len(e.Scenes(), 1)

	// Scenes returns a copy; mutating it does not affect the engine.
	cp := e.Scenes()
	delete(cp, 3)
	assert.NotNil(e.Scene(3))

	e.RemoveScene(3)
	assert.Nil(e.Scene(3))
}

func TestEngine_QuitIsIdempotent(t *testing.T) {
	e := NewEngine(WithTickRate(240))

	done := make(chan struct{})
	go func() {
		e.(*engine).handle()
		e.(*engine).wg.Wait()
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	e.Quit()
	e.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("engine goroutines did not stop after Quit")
	}
}

func TestEngine_NoRendererMeansNoRegistry(t *testing.T) {
	e := NewEngine()
	assert.Nil(t, e.ShadowRegistry())
	assert.Nil(t, e.Renderer())
}

package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnBuildStart(ctx, "matrix")
	p.OnBuildComplete(ctx, "matrix", 3, 2, time.Millisecond, nil)
	p.OnRenderStart(ctx, "neato", "svg", 3)
	p.OnRenderComplete(ctx, "svg", 2048, time.Second, errors.New("boom"))

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "figure")
	c.OnCacheMiss(ctx, "figure")
	c.OnCacheSet(ctx, "figure", 1024)

	s := NoopServerHooks{}
	s.OnRequest(ctx, "req-1", "POST", "/v1/render")
	s.OnResponse(ctx, "req-1", "POST", "/v1/render", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customServer := &testServerHooks{}
	SetServerHooks(customServer)
	if Server() != customServer {
		t.Error("SetServerHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Reset() should restore NoopServerHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	rec := &testPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnBuildStart(ctx, "nodes")
	Pipeline().OnBuildComplete(ctx, "nodes", 4, 3, time.Millisecond, nil)

	if rec.builds != 1 || rec.lastNodes != 4 {
		t.Errorf("recorded builds=%d nodes=%d, want 1 and 4", rec.builds, rec.lastNodes)
	}
}

type testPipelineHooks struct {
	NoopPipelineHooks
	builds    int
	lastNodes int
}

func (h *testPipelineHooks) OnBuildComplete(_ context.Context, _ string, nodes, _ int, _ time.Duration, _ error) {
	h.builds++
	h.lastNodes = nodes
}

type testCacheHooks struct{ NoopCacheHooks }
type testServerHooks struct{ NoopServerHooks }

package pcm

import (
	"errors"
	"io"
	"testing"
)

// mockExtractor is a test extractor implementation
type mockExtractor struct {
	name string
}

func (e *mockExtractor) Extract(r io.ReadSeeker, maxSeconds int) ([]byte, Info, error) {
	return nil, Info{SampleRate: 44100, Channels: 1, BitDepth: 16}, nil
}

// failingExtractor always returns an error
type failingExtractor struct{}

func (e *failingExtractor) Extract(r io.ReadSeeker, maxSeconds int) ([]byte, Info, error) {
	return nil, Info{}, errors.New("extract failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	extractor := &mockExtractor{name: "wav"}

	registry.Register("wav", extractor)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered extractor")
	}

	if got != extractor {
		t.Error("Registry.Get() returned different extractor instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent extension")
	}
}

func TestRegistry_MultipleExtensions(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavExtractor := &mockExtractor{name: "wav"}
	aiffExtractor := &mockExtractor{name: "aiff"}

	registry.Register("wav", wavExtractor)
	registry.Register("aiff", aiffExtractor)
	registry.Register("aif", aiffExtractor)

	tests := []struct {
		ext    string
		want   Extractor
		wantOK bool
	}{
		{"wav", wavExtractor, true},
		{"aiff", aiffExtractor, true},
		{"aif", aiffExtractor, true},
		{"mp3", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, ok := registry.Get(tt.ext)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.ext, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong extractor", tt.ext)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockExtractor{name: "first"}
	second := &mockExtractor{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() did not return the overwritten extractor")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	extractor := &mockExtractor{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("wav", extractor)
			done <- true
		}()
	}

	for range 10 {
		go func() {
			_, _ = registry.Get("wav")
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("wav")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != extractor {
		t.Error("Registry returned wrong extractor after concurrent operations")
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if registry.formats == nil {
		t.Error("NewRegistry() did not initialize formats map")
	}

	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

// BenchmarkRegistry_Get benchmarks retrieving extractors
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	extractor := &mockExtractor{}
	registry.Register("wav", extractor)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}

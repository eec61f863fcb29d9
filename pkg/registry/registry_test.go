package registry

import (
	"fmt"
	"sync"
	"testing"

	"ilweld/pkg/errors"
)

// toolSpec stands in for the tool flavor descriptors the executor registers
type toolSpec struct {
	Executable string
	Dialect    string
}

func TestNew(t *testing.T) {
	reg := New[toolSpec]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := New[toolSpec]()

	t.Run("register valid item", func(t *testing.T) {
		err := reg.Register("ilmerge", toolSpec{Executable: "ILMerge.exe", Dialect: "slash"})

		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", toolSpec{Executable: "ILRepack.exe"})

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("ilmerge", toolSpec{Executable: "ILMerge.exe"})

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestGet(t *testing.T) {
	reg := New[toolSpec]()
	spec := toolSpec{Executable: "ILRepack.exe", Dialect: "slash"}
	_ = reg.Register("ilrepack", spec)

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("ilrepack")

		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}

		if got != spec {
			t.Errorf("Get() = %+v, want %+v", got, spec)
		}
	})

	t.Run("get non-existing item", func(t *testing.T) {
		_, err := reg.Get("nonexistent")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestRemove(t *testing.T) {
	reg := New[toolSpec]()
	_ = reg.Register("ilmerge", toolSpec{Executable: "ILMerge.exe"})

	t.Run("remove existing item", func(t *testing.T) {
		err := reg.Remove("ilmerge")

		if err != nil {
			t.Fatalf("Remove() error = %v, want nil", err)
		}

		if reg.Has("ilmerge") {
			t.Error("Item should not exist after removal")
		}
	})

	t.Run("remove non-existing item", func(t *testing.T) {
		err := reg.Remove("nonexistent")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Remove() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	reg := New[toolSpec]()

	// Register items in non-alphabetical order
	for _, name := range []string{"ilrepack", "ilmerge", "fake"} {
		_ = reg.Register(name, toolSpec{})
	}

	list := reg.List()
	expected := []string{"fake", "ilmerge", "ilrepack"}

	if len(list) != len(expected) {
		t.Fatalf("List() returned %d items, want %d", len(list), len(expected))
	}

	for i, name := range list {
		if name != expected[i] {
			t.Errorf("List()[%d] = %s, want %s", i, name, expected[i])
		}
	}
}

func TestHas(t *testing.T) {
	reg := New[toolSpec]()
	_ = reg.Register("ilmerge", toolSpec{})

	tests := []struct {
		name     string
		itemName string
		want     bool
	}{
		{"existing item", "ilmerge", true},
		{"non-existing item", "ilrepack", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Has(tt.itemName); got != tt.want {
				t.Errorf("Has(%s) = %v, want %v", tt.itemName, got, tt.want)
			}
		})
	}
}

func TestClear(t *testing.T) {
	reg := New[toolSpec]()

	for i := 0; i < 5; i++ {
		_ = reg.Register(fmt.Sprintf("flavor%d", i), toolSpec{})
	}

	if reg.Count() != 5 {
		t.Fatalf("Expected 5 items before clear, got %d", reg.Count())
	}

	reg.Clear()

	if reg.Count() != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", reg.Count())
	}
}

func TestConcurrency(t *testing.T) {
	reg := New[toolSpec]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_flavor%d", goroutineID, i)
				if err := reg.Register(name, toolSpec{}); err != nil {
					t.Errorf("Concurrent Register() failed: %v", err)
				}
			}
		}(g)
	}

	wg.Wait()

	expectedCount := goroutines * itemsPerGoroutine
	if reg.Count() != expectedCount {
		t.Errorf("Count() after concurrent writes = %d, want %d", reg.Count(), expectedCount)
	}

	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_flavor%d", goroutineID, i)
				if _, err := reg.Get(name); err != nil {
					t.Errorf("Concurrent Get() failed: %v", err)
				}
			}
		}(g)
	}

	wg.Wait()
}

func TestMustRegister(t *testing.T) {
	reg := New[toolSpec]()

	t.Run("successful registration", func(t *testing.T) {
		MustRegister(reg, "ilmerge", toolSpec{Executable: "ILMerge.exe"})

		if !reg.Has("ilmerge") {
			t.Error("MustRegister() should have registered the item")
		}
	})

	t.Run("panic on duplicate", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustRegister() should panic on duplicate registration")
			}
		}()

		MustRegister(reg, "ilmerge", toolSpec{})
	})
}

func TestMustGet(t *testing.T) {
	reg := New[toolSpec]()
	spec := toolSpec{Executable: "ILMerge.exe"}
	_ = reg.Register("ilmerge", spec)

	t.Run("successful get", func(t *testing.T) {
		got := MustGet[toolSpec](reg, "ilmerge")

		if got != spec {
			t.Errorf("MustGet() = %+v, want %+v", got, spec)
		}
	})

	t.Run("panic on not found", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustGet() should panic when item not found")
			}
		}()

		MustGet[toolSpec](reg, "nonexistent")
	})
}

// TestWithFunctions tests registry with function types, the shape tool
// flavor factories take
func TestWithFunctions(t *testing.T) {
	type factory func(path string) (string, error)

	reg := New[factory]()

	_ = reg.Register("ok", func(path string) (string, error) { return path, nil })
	_ = reg.Register("fail", func(path string) (string, error) { return "", fmt.Errorf("bad path: %s", path) })

	f, err := reg.Get("fail")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if _, err := f("x"); err == nil || err.Error() != "bad path: x" {
		t.Error("Retrieved function doesn't behave as expected")
	}
}

package viewport

import (
	"sync"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		width int
		want  Class
	}{
		{40, Mobile},
		{99, Mobile},
		{100, Desktop},
		{200, Desktop},
		{0, Desktop},
	}
	for _, tc := range cases {
		if got := classify(tc.width); got != tc.want {
			t.Errorf("classify(%d) = %s, want %s", tc.width, got, tc.want)
		}
	}
}

func TestPageSizePerClass(t *testing.T) {
	if got := Mobile.PageSize(); got != MobilePageSize {
		t.Errorf("Mobile.PageSize = %d", got)
	}
	if got := Desktop.PageSize(); got != DesktopPageSize {
		t.Errorf("Desktop.PageSize = %d", got)
	}
	if Mobile.Paginated() {
		t.Error("mobile must not be paginated")
	}
	if !Desktop.Paginated() {
		t.Error("desktop must be paginated")
	}
}

func TestParseClass(t *testing.T) {
	if c, ok := ParseClass("mobile"); !ok || c != Mobile {
		t.Errorf("ParseClass(mobile) = %s, %v", c, ok)
	}
	if c, ok := ParseClass("desktop"); !ok || c != Desktop {
		t.Errorf("ParseClass(desktop) = %s, %v", c, ok)
	}
	if _, ok := ParseClass(""); ok {
		t.Error("ParseClass(\"\") reported ok")
	}
	if _, ok := ParseClass("tablet"); ok {
		t.Error("ParseClass(tablet) reported ok")
	}
}

func TestSignalOverrideWins(t *testing.T) {
	mobile := Mobile
	s := NewSignal(-1, &mobile)
	defer s.Close()
	if got := s.Current(); got != Mobile {
		t.Errorf("Current = %s, want override", got)
	}
}

func TestSignalNonTerminalIsDesktop(t *testing.T) {
	s := NewSignal(-1, nil)
	defer s.Close()
	if got := s.Current(); got != Desktop {
		t.Errorf("Current = %s, want desktop for non-terminal fd", got)
	}
}

func TestSignalCloseIsIdempotent(t *testing.T) {
	s := NewSignal(-1, nil)
	s.Close()
	s.Close()
}

func TestSignalCloseIsConcurrencySafe(t *testing.T) {
	s := NewSignal(-1, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Close()
		}()
	}
	wg.Wait()
}

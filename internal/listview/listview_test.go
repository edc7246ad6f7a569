package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nybarber/barberia/internal/viewport"
)

type row struct {
	ID   string
	Name string
}

func rowFields(r row) []string { return []string{r.Name} }

func fixedClass(c viewport.Class) func() viewport.Class {
	return func() viewport.Class { return c }
}

func makeRows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{ID: fmt.Sprintf("%d", i), Name: fmt.Sprintf("item %d", i)}
	}
	return out
}

func staticFetch(rows []row) Fetcher[row] {
	return func(context.Context) ([]row, error) { return rows, nil }
}

func TestRefreshLoadsCollection(t *testing.T) {
	c := New(staticFetch(makeRows(3)), rowFields, fixedClass(viewport.Desktop))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
}

func TestRefreshError(t *testing.T) {
	boom := errors.New("boom")
	c := New(Fetcher[row](func(context.Context) ([]row, error) { return nil, boom }), rowFields, fixedClass(viewport.Desktop))
	if err := c.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if c.Len() != 0 {
		t.Errorf("failed refresh stored items: Len = %d", c.Len())
	}
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	rows := []row{
		{ID: "1", Name: "Corte clásico"},
		{ID: "2", Name: "Afeitado"},
		{ID: "3", Name: "corte y barba"},
	}
	c := New(staticFetch(rows), rowFields, fixedClass(viewport.Desktop))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.SetQuery("CORTE")
	got := c.Filtered()
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("Filtered = %v, want rows 1 and 3 in order", got)
	}

	c.SetQuery("   ")
	if c.Len() != 3 {
		t.Errorf("blank query Len = %d, want full set", c.Len())
	}

	c.SetQuery("peinado")
	if c.Len() != 0 {
		t.Errorf("no-match query Len = %d, want 0", c.Len())
	}
}

func TestItemCountIgnoresQuery(t *testing.T) {
	c := New(staticFetch(makeRows(10)), rowFields, fixedClass(viewport.Desktop))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	c.SetQuery("item 3")
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	if got := c.ItemCount(); got != 10 {
		t.Errorf("ItemCount = %d, want the unfiltered 10", got)
	}
}

func TestSetQueryResetsPage(t *testing.T) {
	c := New(staticFetch(makeRows(10)), rowFields, fixedClass(viewport.Desktop))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	c.SetPage(3)
	if c.Page() != 3 {
		t.Fatalf("Page = %d, want 3", c.Page())
	}
	c.SetQuery("item")
	if c.Page() != 1 {
		t.Errorf("Page after SetQuery = %d, want 1", c.Page())
	}
}

func TestDesktopPagination(t *testing.T) {
	c := New(staticFetch(makeRows(10)), rowFields, fixedClass(viewport.Desktop))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := c.TotalPages(); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}

	first := c.Visible()
	if len(first) != 4 || first[0].ID != "0" || first[3].ID != "3" {
		t.Errorf("page 1 = %v, want items 0..3", first)
	}

	c.SetPage(3)
	last := c.Visible()
	if len(last) != 2 || last[0].ID != "8" || last[1].ID != "9" {
		t.Errorf("page 3 = %v, want items 8..9", last)
	}

	c.SetPage(99)
	if c.Page() != 3 {
		t.Errorf("overshoot Page = %d, want clamp to 3", c.Page())
	}
	c.SetPage(0)
	if c.Page() != 1 {
		t.Errorf("undershoot Page = %d, want clamp to 1", c.Page())
	}
}

func TestEmptyListHasOnePage(t *testing.T) {
	c := New(staticFetch(nil), rowFields, fixedClass(viewport.Desktop))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := c.TotalPages(); got != 1 {
		t.Errorf("TotalPages = %d, want 1", got)
	}
	if got := c.Visible(); len(got) != 0 {
		t.Errorf("Visible = %v, want empty", got)
	}
}

func TestMobileShowsEverything(t *testing.T) {
	c := New(staticFetch(makeRows(10)), rowFields, fixedClass(viewport.Mobile))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := len(c.Visible()); got != 10 {
		t.Errorf("Visible on mobile = %d items, want 10", got)
	}
}

func TestOverlappingRefreshesShareOneFetch(t *testing.T) {
	var (
		mu      sync.Mutex
		calls   int
		entered = make(chan struct{}, 8)
		release = make(chan struct{})
	)
	fetch := func(ctx context.Context) ([]row, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		entered <- struct{}{}
		<-release
		return makeRows(3), nil
	}

	c := New(fetch, rowFields, fixedClass(viewport.Desktop))

	done := make(chan error, 5)
	go func() { done <- c.Refresh(context.Background()) }()
	<-entered

	for i := 0; i < 4; i++ {
		go func() { done <- c.Refresh(context.Background()) }()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)

	for i := 0; i < 5; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("fetch ran %d times for overlapping refreshes, want 1", calls)
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

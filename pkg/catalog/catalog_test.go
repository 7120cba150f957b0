package catalog

import (
	"slices"
	"testing"
)

func TestUniqueFilmIDs(t *testing.T) {
	tests := []struct {
		name  string
		films []int
		want  []int
	}{
		{"nil", nil, []int{}},
		{"no repeats", []int{4, 1, 2}, []int{4, 1, 2}},
		{"repeat keeps first position", []int{1, 2, 1, 3, 2}, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Character{Films: tt.films}.UniqueFilmIDs()
			if !slices.Equal(got, tt.want) {
				t.Errorf("UniqueFilmIDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStarshipAppearsIn(t *testing.T) {
	s := Starship{ID: 9, Films: []int{1, 3}}
	if !s.AppearsIn(3) {
		t.Error("AppearsIn(3) = false, want true")
	}
	if s.AppearsIn(2) {
		t.Error("AppearsIn(2) = true, want false")
	}
}

func TestPageHasNext(t *testing.T) {
	if (Page[Film]{}).HasNext() {
		t.Error("empty Next should not have a next page")
	}
	if !(Page[Film]{Next: "https://example.test/films/?page=2"}).HasNext() {
		t.Error("non-empty Next should have a next page")
	}
}

func TestNewFilmIndex(t *testing.T) {
	idx := NewFilmIndex([]Film{
		{ID: 1, Title: "A New Hope"},
		{ID: 2, Title: "The Empire Strikes Back"},
		{ID: 1, Title: "duplicate"},
	})

	f, ok := idx.Lookup(1)
	if !ok || f.Title != "A New Hope" {
		t.Errorf("Lookup(1) = %+v, %v; want first entry", f, ok)
	}
	if _, ok := idx.Lookup(99); ok {
		t.Error("Lookup(99) should miss")
	}
}

func TestIndexStarshipsByFilm(t *testing.T) {
	ships := []Starship{
		{ID: 1, Films: []int{10}},
		{ID: 2, Films: []int{10, 20}},
		{ID: 3, Films: []int{20, 20}},
	}
	idx := IndexStarshipsByFilm(ships)

	ids := func(ss []Starship) []int {
		out := make([]int, len(ss))
		for i, s := range ss {
			out[i] = s.ID
		}
		return out
	}

	if got := ids(idx.InFilm(10)); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("InFilm(10) = %v, want [1 2]", got)
	}
	if got := ids(idx.InFilm(20)); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("InFilm(20) = %v, want [2 3]", got)
	}
	if got := idx.InFilm(30); len(got) != 0 {
		t.Errorf("InFilm(30) = %v, want empty", got)
	}
}

func TestIndexStarshipsByFilmRepeatedShip(t *testing.T) {
	idx := IndexStarshipsByFilm([]Starship{
		{ID: 5, Name: "first", Films: []int{1}},
		{ID: 6, Films: []int{1}},
		{ID: 5, Name: "second", Films: []int{1, 2}},
	})

	got := idx.InFilm(1)
	if len(got) != 2 || got[0].ID != 5 || got[1].ID != 6 {
		t.Fatalf("InFilm(1) = %+v, want ships 5 and 6", got)
	}
	if got[0].Name != "first" {
		t.Errorf("InFilm(1)[0].Name = %q, first catalog entry should win", got[0].Name)
	}
	if got := idx.InFilm(2); len(got) != 0 {
		t.Errorf("InFilm(2) = %+v, repeated entry should be ignored", got)
	}
}

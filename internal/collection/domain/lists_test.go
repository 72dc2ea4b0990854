package domain

import (
	"reflect"
	"testing"

	"github.com/go-faster/errors"
)

func TestCompareRejectsFourth(t *testing.T) {
	set := []string{"1", "3", "7"}
	got, added, err := ToggleCompare(set, "9")
	if !errors.Is(err, ErrCompareFull) {
		t.Fatalf("expected ErrCompareFull, got %v", err)
	}
	if added || !reflect.DeepEqual(got, []string{"1", "3", "7"}) {
		t.Fatalf("set changed: %v", got)
	}
	if !reflect.DeepEqual(set, []string{"1", "3", "7"}) {
		t.Fatalf("input mutated: %v", set)
	}
}

func TestCompareRemoveWhenFull(t *testing.T) {
	got, added, err := ToggleCompare([]string{"1", "3", "7"}, "3")
	if err != nil || added || !reflect.DeepEqual(got, []string{"1", "7"}) {
		t.Fatalf("got %v added=%v err=%v", got, added, err)
	}
}

func TestToggleLimit(t *testing.T) {
	cases := []struct {
		name    string
		set     []string
		limit   int
		want    []string
		wantErr error
	}{
		{"unlimited", []string{"1", "2"}, 0, []string{"1", "2", "9"}, nil},
		{"below limit", []string{"1"}, 2, []string{"1", "9"}, nil},
		{"at limit", []string{"1", "2"}, 2, []string{"1", "2"}, ErrCompareFull},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := Toggle(tc.set, "9", tc.limit)
			if !errors.Is(err, tc.wantErr) || !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v err=%v", got, err)
			}
		})
	}
}

func TestWishlistToggle(t *testing.T) {
	got, added := ToggleWishlist([]string{"2"}, "5")
	if !added || !reflect.DeepEqual(got, []string{"2", "5"}) {
		t.Fatalf("add: %v", got)
	}
	got, added = ToggleWishlist(got, "2")
	if added || !reflect.DeepEqual(got, []string{"5"}) {
		t.Fatalf("remove: %v", got)
	}
}

func TestView(t *testing.T) {
	cases := []struct {
		name   string
		recent []string
		id     string
		want   []string
	}{
		{"evicts oldest", []string{"3", "1", "2", "4"}, "5", []string{"5", "3", "1", "2"}},
		{"moves to front", []string{"3", "1", "2", "4"}, "2", []string{"2", "3", "1", "4"}},
		{"already first", []string{"3", "1"}, "3", []string{"3", "1"}},
		{"empty", nil, "8", []string{"8"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := View(tc.recent, tc.id); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	if got := Key(CompareList, "v-1"); got != "compareList:v-1" {
		t.Fatalf("got %q", got)
	}
}

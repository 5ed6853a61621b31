// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		members []string
		want    []string
		wantErr bool
	}{
		{
			name:    "sorted and cleaned",
			members: []string{"SPECS/b/b.spec", "./SPECS/a/a.spec"},
			want:    []string{"SPECS/a/a.spec", "SPECS/b/b.spec"},
		},
		{
			name:    "duplicates collapse",
			members: []string{"a.spec", "b.spec", "a.spec"},
			want:    []string{"a.spec", "b.spec"},
		},
		{
			name:    "backslashes become slashes",
			members: []string{`SPECS\a\a.spec`, "SPECS/b/b.spec"},
			want:    []string{"SPECS/a/a.spec", "SPECS/b/b.spec"},
		},
		{name: "single member", members: []string{"a.spec"}, wantErr: true},
		{name: "duplicate pair", members: []string{"a.spec", "./a.spec"}, wantErr: true},
		{name: "empty member", members: []string{"a.spec", " "}, wantErr: true},
		{name: "absolute member", members: []string{"a.spec", "/etc/b.spec"}, wantErr: true},
		{name: "escaping member", members: []string{"a.spec", "../b.spec"}, wantErr: true},
		{name: "no members", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := NewGroup(tt.members...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGroup) {
					t.Fatalf("NewGroup() error = %v, want ErrInvalidGroup", err)
				}
				var ige *InvalidGroupError
				if !errors.As(err, &ige) {
					t.Fatalf("NewGroup() error type = %T, want *InvalidGroupError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGroup() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, g.Members()); diff != "" {
				t.Errorf("Members() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroup_Methods(t *testing.T) {
	t.Parallel()

	g := MustGroup("SPECS/kernel/kernel.spec", "SPECS/hyperv-daemons/hyperv-daemons.spec")
	same := MustGroup("SPECS/hyperv-daemons/hyperv-daemons.spec", "SPECS/kernel/kernel.spec")

	if !g.Equal(same) || g.Key() != same.Key() {
		t.Error("groups with the same members should be equal regardless of order")
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	if !g.Contains("./SPECS/kernel/kernel.spec") {
		t.Error("Contains() should clean its argument")
	}
	if g.Contains("SPECS/grub2/grub2.spec") {
		t.Error("Contains() reported a non-member")
	}
	if want := "[SPECS/hyperv-daemons/hyperv-daemons.spec, SPECS/kernel/kernel.spec]"; g.String() != want {
		t.Errorf("String() = %q, want %q", g.String(), want)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if err := (Group{}).Validate(); !errors.Is(err, ErrInvalidGroup) {
		t.Errorf("zero Group Validate() = %v, want ErrInvalidGroup", err)
	}

	members := g.Members()
	members[0] = "changed"
	if g.Members()[0] == "changed" {
		t.Error("Members() should return a copy")
	}
}

func TestMustGroup_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustGroup() with one member should panic")
		}
	}()
	MustGroup("only.spec")
}

func TestField(t *testing.T) {
	t.Parallel()

	for _, f := range Fields() {
		got, err := ParseField(f.String())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %q, %v", f, got, err)
		}
	}

	_, err := ParseField("arch")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("ParseField(arch) error = %v, want ErrUnknownField", err)
	}
}

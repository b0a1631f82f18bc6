package chance

import (
	"errors"
	"testing"

	"github.com/linku/linku/internal/api"
)

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	f := Form{School: "Waterloo", Program: "Software Engineering", Top6: "95.5", ECs: "robotics, council"}
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBlankSchool(t *testing.T) {
	f := Form{School: "  ", Program: "CS", Top6: "95", ECs: ""}
	err := f.Validate()
	if err == nil {
		t.Fatal("blank school must be rejected locally")
	}
	var verr *api.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error type = %T, want *api.ValidationError", err)
	}
}

func TestValidateRejectsBlankProgram(t *testing.T) {
	f := Form{School: "Waterloo", Program: "\t", Top6: "95"}
	if f.Validate() == nil {
		t.Error("blank program must be rejected")
	}
}

func TestValidateTop6Range(t *testing.T) {
	cases := []struct {
		top6 string
		ok   bool
	}{
		{"0", true},
		{"100", true},
		{"87.5", true},
		{"-1", false},
		{"101", false},
		{"", false},
		{"ninety", false},
	}
	for _, c := range cases {
		f := Form{School: "W", Program: "P", Top6: c.top6}
		err := f.Validate()
		if c.ok && err != nil {
			t.Errorf("Top6 %q: unexpected error %v", c.top6, err)
		}
		if !c.ok && err == nil {
			t.Errorf("Top6 %q: expected rejection", c.top6)
		}
	}
}

func TestECsOptional(t *testing.T) {
	f := Form{School: "W", Program: "P", Top6: "90", ECs: ""}
	if err := f.Validate(); err != nil {
		t.Errorf("empty ECs should validate, got %v", err)
	}
}

func TestRequestTrimsFields(t *testing.T) {
	f := Form{School: " Waterloo ", Program: " SE ", Top6: " 95 ", ECs: " robotics "}
	req := f.Request()
	if req.School != "Waterloo" || req.Program != "SE" || req.Top6 != "95" || req.ECs != "robotics" {
		t.Errorf("request = %+v, want trimmed fields", req)
	}
}

package menu

import "testing"

func TestResolveTipLiteralIgnoresResult(t *testing.T) {
	for _, result := range []any{"", 0, struct{ n int }{4}, nil, 3.5} {
		text, show := resolveTip(nil, TipText("Done"), result)
		if !show || text != "Done" {
			t.Fatalf("literal policy with result %#v: got (%q,%v)", result, text, show)
		}
	}
}

func TestResolveTipUnsetUsesHandlerResult(t *testing.T) {
	cases := []struct {
		result any
		text   string
		show   bool
	}{
		{"Copied: X", "Copied: X", true},
		{"", "", false},
		{"0", "0", true},
		{0, "0", true},
		{42, "42", true},
		{int64(-7), "-7", true},
		{uint(3), "3", true},
		{1.5, "1.5", true},
		{float32(0), "0", true},
		{nil, "", false},
		{struct{}{}, "", false},
		{true, "", false},
	}
	for _, tc := range cases {
		text, show := resolveTip(nil, nil, tc.result)
		if show != tc.show || text != tc.text {
			t.Fatalf("result %#v: got (%q,%v), want (%q,%v)",
				tc.result, text, show, tc.text, tc.show)
		}
	}
}

func TestResolveTipFuncWinsOverResult(t *testing.T) {
	transform := TipFunc(func(c *Controller, result any) string {
		if s, ok := result.(string); ok {
			return "got " + s
		}
		return ""
	})
	text, show := resolveTip(nil, transform, "x")
	if !show || text != "got x" {
		t.Fatalf("transform result lost: (%q,%v)", text, show)
	}
	// An empty transform result suppresses the tooltip even for a
	// displayable handler result.
	if _, show := resolveTip(nil, transform, 7); show {
		t.Fatalf("empty transform output must suppress the tooltip")
	}
}

func TestResolveTipEmptyLiteralFallsBack(t *testing.T) {
	text, show := resolveTip(nil, TipText(""), "fallback")
	if !show || text != "fallback" {
		t.Fatalf("empty literal should defer to the result: (%q,%v)", text, show)
	}
}

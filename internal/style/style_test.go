package style

import "testing"

func TestParseRoundTrip(t *testing.T) {
	descriptors := []string{
		"none",
		"bold",
		"dim #383b3d",
		"bold rgb(255,85,85)",
		"bold #000000 on #d73a49",
		"italic underline red",
		"bold italic underline #b31d28",
		"underline2 blink2 bright_cyan on black",
		"strike frame encircle overline",
		"bold magenta link https://example.com",
	}

	for _, descriptor := range descriptors {
		parsed, err := Parse(descriptor)
		if err != nil {
			t.Fatalf("Parse(%q): %v", descriptor, err)
		}
		rendered := parsed.String()
		reparsed, err := Parse(rendered)
		if err != nil {
			t.Fatalf("Parse(%q): %v", rendered, err)
		}
		if !parsed.Equal(reparsed) {
			t.Fatalf("round trip of %q changed style: %q", descriptor, rendered)
		}
	}
}

func TestParseCanonicalForm(t *testing.T) {
	cases := map[string]string{
		"":                        "none",
		"none":                    "none",
		"rgb(255,85,85) bold":     "bold rgb(255,85,85)",
		"reverse italic":          "italic reverse",
		"dim #383B3D":             "dim #383b3d",
		"bold #000000 on #d73a49": "bold #000000 on #d73a49",
	}

	for descriptor, want := range cases {
		parsed, err := Parse(descriptor)
		if err != nil {
			t.Fatalf("Parse(%q): %v", descriptor, err)
		}
		if got := parsed.String(); got != want {
			t.Errorf("Parse(%q).String() = %q, want %q", descriptor, got, want)
		}
	}
}

func TestParseNot(t *testing.T) {
	parsed, err := Parse("bold not bold red")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Bold {
		t.Errorf("expected bold to be cleared")
	}
	if parsed.Foreground.String() != "red" {
		t.Errorf("expected red foreground, got %q", parsed.Foreground.String())
	}
}

func TestParseErrors(t *testing.T) {
	invalid := []string{
		"shiny",
		"not",
		"on",
		"link",
		"not shiny",
		"on chartreuse-ish",
		"#12",
		"rgb(1,2)",
		"rgb(300,0,0)",
		"red blue",
	}

	for _, descriptor := range invalid {
		if _, err := Parse(descriptor); err == nil {
			t.Errorf("Parse(%q): expected error", descriptor)
		}
	}
}

func TestAttributes(t *testing.T) {
	if got := (Style{}).Attributes(); got != "--------------" {
		t.Fatalf("zero style attributes = %q", got)
	}

	full := MustParse("bold dim italic underline underline2 blink blink2 reverse conceal strike frame encircle overline link https://example.com")
	if got := full.Attributes(); got != "bdiuUB2rcsfeoL" {
		t.Fatalf("full style attributes = %q", got)
	}

	partial := MustParse("bold underline")
	if got := partial.Attributes(); got != "b--u----------" {
		t.Fatalf("partial style attributes = %q", got)
	}
}

func TestColorRGB(t *testing.T) {
	color, err := ParseColor("rgb(255,85,85)")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	r, g, b := color.RGB()
	if r != 255 || g != 85 || b != 85 {
		t.Fatalf("unexpected channels: %d %d %d", r, g, b)
	}

	hex, err := ParseColor("#383b3d")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	r, g, b = hex.RGB()
	if r != 0x38 || g != 0x3b || b != 0x3d {
		t.Fatalf("unexpected channels: %d %d %d", r, g, b)
	}
}

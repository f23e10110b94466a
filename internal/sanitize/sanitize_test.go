package sanitize

import "testing"

func TestComment(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Nice room!", "Nice room!"},
		{"script removed with contents", "<script>alert(1)</script>Nice room!", "Nice room!"},
		{"tags stripped text kept", "Great <b>projector</b> and chairs", "Great projector and chairs"},
		{"nested markup", "<div><p>Spacious</p> room</div>", "Spacious room"},
		{"ampersand preserved", "Tables & chairs", "Tables & chairs"},
		{"whitespace trimmed", "  clean room<br>  ", "clean room"},
		{"markup only becomes empty", "<img src=x onerror=alert(1)>", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Comment(tc.in)
			if got != tc.want {
				t.Fatalf("Comment(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

package upload

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Drift lists inconsistencies in the policy: duplicate extensions or MIME
// types, and dimension profiles whose aspect label disagrees with their size.
// An empty result means the policy is consistent.
func (p *Policy) Drift() []string {
	var issues []string

	exts := make(map[string]string)
	mimes := make(map[string]string)
	for _, f := range p.formats {
		if prev, dup := exts[f.Extension]; dup {
			issues = append(issues, fmt.Sprintf("extension %q maps to both %s and %s", f.Extension, prev, f.MIMEType))
		}
		if prev, dup := mimes[f.MIMEType]; dup {
			issues = append(issues, fmt.Sprintf("mime type %s maps to both %q and %q", f.MIMEType, prev, f.Extension))
		}
		exts[f.Extension] = f.MIMEType
		mimes[f.MIMEType] = f.Extension
	}

	names := make([]string, 0, len(p.dimensions))
	for name := range p.dimensions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d := p.dimensions[name]
		if d.Width <= 0 || d.Height <= 0 {
			issues = append(issues, fmt.Sprintf("dimension %q has non-positive size %dx%d", name, d.Width, d.Height))
			continue
		}
		if want := aspectLabel(d.Width, d.Height); !sameAspect(d.Aspect, want) {
			issues = append(issues, fmt.Sprintf("dimension %q is %dx%d (%s) but labelled %q", name, d.Width, d.Height, want, d.Aspect))
		}
	}

	return issues
}

func aspectLabel(w, h int) string {
	g := gcd(w, h)
	return strconv.Itoa(w/g) + ":" + strconv.Itoa(h/g)
}

// sameAspect compares a declared label such as "16:9" to a reduced ratio.
func sameAspect(label, reduced string) bool {
	lw, lh, ok := strings.Cut(strings.TrimSpace(label), ":")
	if !ok {
		return false
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(lw))
	h, err2 := strconv.Atoi(strings.TrimSpace(lh))
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return false
	}
	return aspectLabel(w, h) == reduced
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

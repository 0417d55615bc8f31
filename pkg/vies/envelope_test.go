package vies

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/getmockd/vatcheck/pkg/securexml"
)

func TestBuildEnvelope_VerbatimValues(t *testing.T) {
	body, err := buildEnvelope("IT", "00950501007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := securexml.ParseString(body)
	if err != nil {
		t.Fatalf("built envelope did not parse: %v", err)
	}
	if got := doc.FindElement("//countryCode").Text(); got != "IT" {
		t.Errorf("expected countryCode %q, got %q", "IT", got)
	}
	if got := doc.FindElement("//vatNumber").Text(); got != "00950501007" {
		t.Errorf("expected vatNumber %q, got %q", "00950501007", got)
	}
}

func TestBuildEnvelope_Structure(t *testing.T) {
	body, err := buildEnvelope("DE", "129273398")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := securexml.ParseString(body)
	if err != nil {
		t.Fatalf("built envelope did not parse: %v", err)
	}
	root := doc.Root()
	if root.Tag != "Envelope" {
		t.Errorf("expected root Envelope, got %s", root.Tag)
	}
	if doc.FindElement("//Body/checkVat") == nil {
		t.Error("expected checkVat under Body")
	}
}

func TestBuildEnvelope_EscapesSpecialCharacters(t *testing.T) {
	const vat = `DE<x>123&y"z`

	body, err := buildEnvelope("DE", vat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(body, "<x>") {
		t.Errorf("special characters leaked as markup: %s", body)
	}

	doc, err := securexml.ParseString(body)
	if err != nil {
		t.Fatalf("built envelope did not parse: %v", err)
	}
	if doc.FindElement("//x") != nil {
		t.Error("injected value became an element")
	}
	if got := doc.FindElement("//vatNumber").Text(); got != vat {
		t.Errorf("expected vatNumber %q, got %q", vat, got)
	}
}

func TestBuildEnvelope_TemplateNotMutated(t *testing.T) {
	if _, err := buildEnvelope("FR", "12345678901"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The shared template must still carry empty placeholders.
	if got := envelopeTemplate.FindElement("//countryCode").Text(); got != "" {
		t.Errorf("shared template countryCode was mutated to %q", got)
	}
	if got := envelopeTemplate.FindElement("//vatNumber").Text(); got != "" {
		t.Errorf("shared template vatNumber was mutated to %q", got)
	}
}

func TestBuildEnvelope_Concurrent(t *testing.T) {
	const workers = 8
	const rounds = 50

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			cc := fmt.Sprintf("C%d", id)
			vat := fmt.Sprintf("%d00000", id)
			for j := 0; j < rounds; j++ {
				body, err := buildEnvelope(cc, vat)
				if err != nil {
					errs <- err
					return
				}
				doc, err := securexml.ParseString(body)
				if err != nil {
					errs <- err
					return
				}
				if got := doc.FindElement("//countryCode").Text(); got != cc {
					errs <- fmt.Errorf("worker %d: countryCode cross-contaminated: %q", id, got)
					return
				}
				if got := doc.FindElement("//vatNumber").Text(); got != vat {
					errs <- fmt.Errorf("worker %d: vatNumber cross-contaminated: %q", id, got)
					return
				}
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

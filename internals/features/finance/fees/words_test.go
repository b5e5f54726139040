package fees

import (
	"strings"
	"testing"
)

func TestAmountToWords_Scenarios(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "Zero Only"},
		{1, "One Only"},
		{13, "Thirteen Only"},
		{20, "Twenty Only"},
		{21, "Twenty One Only"},
		{99, "Ninety Nine Only"},
		{100, "One Hundred Only"},
		{105, "One Hundred Five Only"},
		{999, "Nine Hundred Ninety Nine Only"},
		{1000, "One Thousand Only"},
		{3000, "Three Thousand Only"},
		{8000, "Eight Thousand Only"},
		{8500, "Eight Thousand Five Hundred Only"},
		{25750, "Twenty Five Thousand Seven Hundred Fifty Only"},
		{100000, "One Hundred Thousand Only"},
		{123456, "One Hundred Twenty Three Thousand Four Hundred Fifty Six Only"},
		{999999, "Nine Hundred Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
	}
	for _, tc := range cases {
		if got := AmountToWords(tc.in); got != tc.want {
			t.Errorf("AmountToWords(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmountToWords_MillionFallback(t *testing.T) {
	// documented bound: at and above one million the plain numeral is kept
	cases := []struct {
		in   int
		want string
	}{
		{1000000, "1000000 Only"},
		{2500000, "2500000 Only"},
	}
	for _, tc := range cases {
		if got := AmountToWords(tc.in); got != tc.want {
			t.Errorf("AmountToWords(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmountToWords_Properties(t *testing.T) {
	for n := 0; n < wordsMax; n += 37 {
		got := AmountToWords(n)
		if !strings.HasSuffix(got, "Only") {
			t.Fatalf("AmountToWords(%d) = %q, missing Only suffix", n, got)
		}
		if strings.ContainsAny(got, "0123456789") {
			t.Fatalf("AmountToWords(%d) = %q, contains digits", n, got)
		}
		if strings.Contains(got, "  ") {
			t.Fatalf("AmountToWords(%d) = %q, has doubled spaces", n, got)
		}
	}
}

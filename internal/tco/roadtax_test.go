package tco

import "testing"

func TestBandsAreOrderedAndIncreasing(t *testing.T) {
	bands := Bands()
	if len(bands) != 13 {
		t.Fatalf("expected 13 bands, got %d", len(bands))
	}
	if bands[0].Band != BandA || bands[12].Band != BandM {
		t.Fatalf("unexpected band order: %+v", bands)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].AnnualTax <= bands[i-1].AnnualTax {
			t.Fatalf("band %s tax %v not above band %s tax %v", bands[i].Band, bands[i].AnnualTax, bands[i-1].Band, bands[i-1].AnnualTax)
		}
	}

	bands[0].AnnualTax = 999
	if BandA.AnnualTax() != 0 {
		t.Fatalf("Bands must return a copy")
	}
}

func TestBandForEmissions(t *testing.T) {
	cases := map[int]TaxBand{
		-5:  BandA,
		0:   BandA,
		1:   BandB,
		50:  BandB,
		51:  BandC,
		90:  BandD,
		100: BandE,
		101: BandF,
		130: BandG,
		150: BandH,
		170: BandI,
		190: BandJ,
		225: BandK,
		255: BandL,
		256: BandM,
		400: BandM,
	}
	for co2, want := range cases {
		if got := BandForEmissions(co2); got != want {
			t.Fatalf("BandForEmissions(%d) = %s, want %s", co2, got, want)
		}
	}
}

func TestParseTaxBand(t *testing.T) {
	if b, ok := ParseTaxBand(" k "); !ok || b != BandK {
		t.Fatalf("ParseTaxBand(\" k \") = %q, %v", b, ok)
	}
	if _, ok := ParseTaxBand("N"); ok {
		t.Fatalf("expected N to be rejected")
	}
}

func TestParseEnums(t *testing.T) {
	if _, ok := ParseFinanceType("pcp"); !ok {
		t.Fatalf("expected pcp to parse")
	}
	if _, ok := ParseFinanceType("PCP"); ok {
		t.Fatalf("finance codes are case-sensitive")
	}
	if _, ok := ParseFuelType("hybrid"); !ok {
		t.Fatalf("expected hybrid to parse")
	}
	if _, ok := ParseFuelType("lpg"); ok {
		t.Fatalf("expected lpg to be rejected")
	}
	if _, ok := ParseCondition("used"); !ok {
		t.Fatalf("expected used to parse")
	}
	if _, ok := ParseCondition("refurbished"); ok {
		t.Fatalf("expected refurbished to be rejected")
	}
}

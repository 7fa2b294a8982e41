package diag_test

import (
	"testing"

	"tsdecl/internal/diag"
	"tsdecl/internal/source"
)

func TestCodeIDFormat(t *testing.T) {
	tests := []struct {
		code diag.Code
		id   string
	}{
		{diag.LexUnknownToken, "LEX1001"},
		{diag.LexUnterminatedString, "LEX1002"},
		{diag.SynUnexpectedToken, "SYN2001"},
		{diag.SynUnexpectedTopLevel, "SYN2003"},
		{diag.IOLoadFileError, "IO4001"},
		{diag.UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.id)
		}
	}
}

func TestErrorfResolvesLineAndMirrors(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.d.ts", []byte("var a: A;\nvar b: %;\n"))
	file := fs.Get(id)

	bag := diag.NewBag(4)
	sp := source.Span{File: id, Start: 17, End: 18} // the '%' on line 2
	err := diag.Errorf(diag.BagReporter{Bag: bag}, file, diag.LexUnknownToken, sp,
		"unrecognized token %q", "%")

	if err.Line != 2 {
		t.Errorf("expected line 2, got %d", err.Line)
	}
	want := `LEX1001 at line 2: unrecognized token "%"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one mirrored diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.LexUnknownToken || d.Severity != diag.SevError || d.Primary != sp {
		t.Errorf("mirrored diagnostic differs: %+v", d)
	}
}

func TestErrorfWithoutReporter(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.d.ts", []byte("x")))

	err := diag.Errorf(nil, file, diag.SynExpectType, source.Span{File: file.ID}, "boom")
	if err == nil || err.Line != 1 {
		t.Fatalf("expected a line-1 error, got %v", err)
	}
}

func TestBagCapAndSort(t *testing.T) {
	bag := diag.NewBag(2)
	first := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Primary:  source.Span{Start: 20, End: 21},
	}
	second := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownToken,
		Primary:  source.Span{Start: 5, End: 6},
	}
	if !bag.Add(first) || !bag.Add(second) {
		t.Fatal("adds under the cap must succeed")
	}
	if bag.Add(first) {
		t.Error("add over the cap must fail")
	}

	bag.Sort()
	items := bag.Items()
	if items[0].Primary.Start != 5 || items[1].Primary.Start != 20 {
		t.Errorf("expected position order after Sort, got %+v", items)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(4)
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownToken,
		Message:  "boom",
		Primary:  source.Span{Start: 1, End: 2},
	}
	bag.Add(d)
	bag.Add(d)
	bag.Dedup()
	if bag.Len() != 1 {
		t.Errorf("expected 1 after Dedup, got %d", bag.Len())
	}
}

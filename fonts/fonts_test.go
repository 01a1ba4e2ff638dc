package fonts

import "testing"

func TestLoadDefaultFonts(t *testing.T) {
	if err := LoadDefaultFonts(12); err != nil {
		t.Fatalf("LoadDefaultFonts: %v", err)
	}
	for _, name := range []FontName{Regular, Small} {
		if !Loaded(name) {
			t.Errorf("%s not loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("expected parse error")
	}
	if Loaded("broken") {
		t.Error("broken font should not be registered")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}

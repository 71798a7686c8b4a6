package content

import "testing"

func TestBackupFor(t *testing.T) {
	tests := []struct {
		name string
		mood int
		tab  Category
		want Category
	}{
		{"low mood laugh tab", 1, CategoryLaugh, CategoryMotivate},
		{"low mood educate tab", 2, CategoryEducate, CategoryLaugh},
		{"low mood motivate tab", 2, CategoryMotivate, CategoryLaugh},
		{"neutral mood motivate tab", 3, CategoryMotivate, CategoryEducate},
		{"neutral mood laugh tab", 3, CategoryLaugh, CategoryMotivate},
		{"high mood educate tab", 4, CategoryEducate, CategoryMotivate},
		{"high mood laugh tab", 5, CategoryLaugh, CategoryEducate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackupFor(tt.mood, tt.tab); got != tt.want {
				t.Errorf("BackupFor(%d, %s) = %s, want %s", tt.mood, tt.tab, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if _, ok := ParseCategory("Laugh"); !ok {
		t.Error("Laugh should parse")
	}
	if _, ok := ParseCategory("laugh"); ok {
		t.Error("categories are case-sensitive")
	}
	if _, ok := ParseCategory(""); ok {
		t.Error("empty string should not parse")
	}
}

package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

// inlineSeeds покрывают углы лексера, которых может не быть в testdata
var inlineSeeds = []string{
	"",
	"<region> sample=a.wav\n",
	"<control> default_path=samples/ <global> volume=-6 <group> lokey=c4 <region> sample=piano c4.wav\n",
	"#define $VEL 64\n<region> sample=$VEL.wav lovel=$VEL\n",
	"#include \"common.sfz\"\n<region> sample=b.wav\n",
	"<region> sample=\"quoted name.wav\" pan=-20 // trailing comment\n",
	"/* block\ncomment */ <group> <region> sample=x.wav\n",
	"<master> label_cc1=Mod <curve> curve_index=1 v000=0 v127=1\n",
	"<region> sample=*sine key=60 amp_veltrack=100 off_by=1 group=1\n",
	"<region sample=a.wav",
	"<region> sample=\"unterminated\n",
	"/* never closed",
	"<bogus> x=1",
	"= = =",
	"<region>sample=a.wav<region>sample=b.wav",
	"#define\n#include\n",
	"<region> sample=a.wav \xff\xfe lokey=c#4\n",
	"<effect> type=lofi <midi> <sample> name=x.wav data=\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.sfz файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".sfz") {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

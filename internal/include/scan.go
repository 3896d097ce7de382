package include

import "bytes"

type includeLine struct {
	path       string
	start, end int // смещения директивы внутри строки
}

// parseIncludeLine распознаёт строку вида `  #include "path"`. Строки внутри
// блочного комментария и некорректные директивы пропускаются: о синтаксисе
// сообщит препроцессор директив.
func parseIncludeLine(line []byte, inBlock bool) (includeLine, bool) {
	if inBlock {
		return includeLine{}, false
	}
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	rest := line[i:]
	const kw = "#include"
	if !bytes.HasPrefix(rest, []byte(kw)) {
		return includeLine{}, false
	}
	p := len(kw)
	for p < len(rest) && (rest[p] == ' ' || rest[p] == '\t') {
		p++
	}
	if p >= len(rest) || rest[p] != '"' {
		return includeLine{}, false
	}
	n := bytes.IndexByte(rest[p+1:], '"')
	if n <= 0 {
		return includeLine{}, false
	}
	return includeLine{
		path:  string(rest[p+1 : p+1+n]),
		start: i,
		end:   i + p + 1 + n + 1,
	}, true
}

// blockState возвращает, остаёмся ли мы внутри /* */ после строки.
func blockState(line []byte, inBlock bool) bool {
	for i := 0; i < len(line); i++ {
		switch {
		case inBlock:
			if line[i] == '*' && i+1 < len(line) && line[i+1] == '/' {
				inBlock = false
				i++
			}
		case line[i] == '/' && i+1 < len(line) && line[i+1] == '/':
			return false
		case line[i] == '/' && i+1 < len(line) && line[i+1] == '*':
			inBlock = true
			i++
		}
	}
	return inBlock
}

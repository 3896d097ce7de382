// Package fuzztests houses Go fuzz harnesses for the front half of the SFZ
// pipeline (source -> lexer -> parser). They look for panics, hangs and
// broken document structure on arbitrary input.
//
// Назначение: прогонять байты через FileSet, лексер и построитель документа.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/testkit.

package fuzztests

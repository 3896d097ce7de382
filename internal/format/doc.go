// Package format writes a parsed Document back out as SFZ text.
//
// Назначение: `sfz flatten` и проверка round-trip. Результат самодостаточен:
// #include уже раскрыты, $VAR подставлены, поэтому #define не печатаются.
// Комментарии и исходное оформление не сохраняются.
// Не делает: IO, разбор, диагностику.
// Зависимости: internal/doc, internal/parser (только для CheckRoundTrip).
package format

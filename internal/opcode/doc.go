// Package opcode holds the catalog of known SFZ opcodes and the typed values
// they accept.
//
// Opcode names may embed numeric parameters (hicc64, eq2_freq,
// lfo1_eq3gain_oncc7). The catalog keys every descriptor by its canonical
// name, where each digit run is replaced by N, X, Y in order (NN for the var
// family). Canonical performs the rewrite and returns the extracted numbers.
//
// Parse converts raw text into a Value according to a descriptor's kind and
// bounds. A failed conversion is reported as *ValueError; callers decide
// whether to keep the raw text.
package opcode

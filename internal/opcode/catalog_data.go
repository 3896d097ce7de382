package opcode

// builtin lists every opcode known to the catalog, keyed by its canonical
// name: numeric parameters embedded in a name are written as N, X, Y
// (or NN for the var family), e.g. hiccN or lfoN_eqXgain_onccY.
var builtin = []Descriptor{
	{Name: "count", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Version: V1},
	{Name: "delay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "delay_ccN", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "delay_random", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "end", Kind: Integer, Bounds: between(0, 4294967295), Unit: "sample units", Version: V1},
	{Name: "loop_mode", Kind: Enumerated, Values: []string{"no_loop", "one_shot", "loop_continuous", "loop_sustain"}, Version: V1},
	{Name: "loop_start", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Version: V1},
	{Name: "loop_end", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Version: V1},
	{Name: "offset", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Unit: "sample units", Version: V1},
	{Name: "offset_ccN", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Unit: "sample units", Version: V1},
	{Name: "offset_random", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Unit: "sample units", Version: V1},
	{Name: "sample", Kind: Path, Version: V1},
	{Name: "sync_beats", Kind: Float, Bounds: between(0, 32), Default: "0", Unit: "beats", Version: V1},
	{Name: "sync_offset", Kind: Float, Bounds: between(0, 32), Default: "0", Unit: "beats", Version: V1},
	{Name: "group", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Version: V1},
	{Name: "off_by", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Version: V1},
	{Name: "off_mode", Kind: Enumerated, Values: []string{"fast", "normal", "time"}, Default: "fast", Version: V1},
	{Name: "output", Kind: Integer, Bounds: between(0, 1024), Default: "0", Version: V1},
	{Name: "key", Kind: Note, Bounds: between(0, 127), Version: V1},
	{Name: "lokey", Kind: Note, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "hikey", Kind: Note, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "lovel", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "hivel", Kind: Integer, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "lochan", Kind: Integer, Bounds: between(1, 16), Default: "1", Version: V1},
	{Name: "hichan", Kind: Integer, Bounds: between(1, 16), Default: "16", Version: V1},
	{Name: "loccN", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "hiccN", Kind: Integer, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "lobend", Kind: Integer, Bounds: between(-8192, 8192), Default: "-8192", Version: V1},
	{Name: "hibend", Kind: Integer, Bounds: between(-8192, 8192), Default: "8192", Version: V1},
	{Name: "sw_lokey", Kind: Note, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "sw_hikey", Kind: Note, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "sw_last", Kind: Note, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "sw_down", Kind: Note, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "sw_up", Kind: Note, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "sw_previous", Kind: Note, Bounds: between(0, 127), Version: V1},
	{Name: "sw_vel", Kind: Enumerated, Values: []string{"current", "previous"}, Default: "current", Version: V1},
	{Name: "lobpm", Kind: Float, Bounds: between(0, 500), Default: "0", Unit: "bpm", Version: V1},
	{Name: "hibpm", Kind: Float, Bounds: between(0, 500), Default: "500", Unit: "bpm", Version: V1},
	{Name: "lochanaft", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "hichanaft", Kind: Integer, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "lopolyaft", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "hipolyaft", Kind: Integer, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "lorand", Kind: Float, Bounds: between(0, 1), Default: "0", Version: V1},
	{Name: "hirand", Kind: Float, Bounds: between(0, 1), Default: "1", Version: V1},
	{Name: "seq_length", Kind: Integer, Bounds: between(1, 100), Default: "1", Version: V1},
	{Name: "seq_position", Kind: Integer, Bounds: between(1, 100), Default: "1", Version: V1},
	{Name: "trigger", Kind: Enumerated, Values: []string{"attack", "release", "first", "legato", "release_key"}, Default: "attack", Version: V1},
	{Name: "on_loccN", Kind: Integer, Bounds: between(0, 127), Default: "-1", Version: V1},
	{Name: "on_hiccN", Kind: Integer, Bounds: between(0, 127), Default: "-1", Version: V1},
	{Name: "pan", Kind: Percentage, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "position", Kind: Percentage, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "volume", Kind: Float, Bounds: between(-144.0, 6.0), Default: "0", Unit: "dB", Version: V1},
	{Name: "gain_ccN", Kind: Float, Bounds: between(-144, 48), Default: "0", Unit: "dB", Version: V1},
	{Name: "width", Kind: Percentage, Bounds: between(-100, 100), Default: "100", Version: V1},
	{Name: "amp_keycenter", Kind: Note, Bounds: between(0, 127), Default: "60", Version: V1},
	{Name: "amp_keytrack", Kind: Float, Bounds: between(-96, 12), Default: "0", Unit: "dB", Version: V1},
	{Name: "amp_veltrack", Kind: Percentage, Bounds: between(-100, 100), Default: "100", Version: V1},
	{Name: "amp_velcurve_N", Kind: Float, Bounds: between(0, 1), Version: V1},
	{Name: "amp_random", Kind: Float, Bounds: between(0, 24), Default: "0", Unit: "dB", Version: V1},
	{Name: "rt_decay", Kind: Float, Bounds: between(0, 200), Default: "0", Unit: "dB", Version: V1},
	{Name: "xf_cccurve", Kind: Enumerated, Values: []string{"gain", "power"}, Default: "power", Version: V1},
	{Name: "xf_keycurve", Kind: Enumerated, Values: []string{"gain", "power"}, Default: "power", Version: V1},
	{Name: "xf_velcurve", Kind: Enumerated, Values: []string{"gain", "power"}, Default: "power", Version: V1},
	{Name: "xfin_loccN", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "xfin_hiccN", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "xfout_loccN", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "xfout_hiccN", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "xfin_lokey", Kind: Note, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "xfin_hikey", Kind: Note, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "xfout_lokey", Kind: Note, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "xfout_hikey", Kind: Note, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "xfin_lovel", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "xfin_hivel", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V1},
	{Name: "xfout_lovel", Kind: Integer, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "xfout_hivel", Kind: Integer, Bounds: between(0, 127), Default: "127", Version: V1},
	{Name: "eqN_bw", Kind: Float, Bounds: between(0.001, 4), Default: "1", Unit: "octaves", Version: V1},
	{Name: "eqN_bwccX", Kind: Float, Bounds: between(-4, 4), Default: "0", Unit: "octaves", Version: V1},
	{Name: "eqN_freq", Kind: Float, Bounds: between(0, 30000), Unit: "Hz", Version: V1},
	{Name: "eqN_freqccX", Kind: Float, Bounds: between(-30000, 30000), Default: "0", Unit: "Hz", Version: V1},
	{Name: "eqN_vel2freq", Kind: Float, Bounds: between(-30000, 30000), Default: "0", Unit: "Hz", Version: V1},
	{Name: "eqN_gain", Kind: Float, Bounds: between(-96, 24), Default: "0", Unit: "dB", Version: V1},
	{Name: "eqN_gainccX", Kind: Float, Bounds: between(-96, 24), Default: "0", Unit: "dB", Version: V1},
	{Name: "eqN_vel2gain", Kind: Float, Bounds: between(-96, 24), Default: "0", Unit: "dB", Version: V1},
	{Name: "cutoff", Kind: Float, Bounds: between(0, 192000), Unit: "Hz", Version: V1},
	{Name: "cutoff_ccN", Kind: Integer, Bounds: between(-9600, 9600), Default: "0", Unit: "cents", Version: V1},
	{Name: "cutoff_chanaft", Kind: Integer, Bounds: between(-9600, 9600), Default: "0", Unit: "cents", Version: V1},
	{Name: "cutoff_polyaft", Kind: Integer, Bounds: between(-9600, 9600), Default: "0", Unit: "cents", Version: V1},
	{Name: "fil_keytrack", Kind: Integer, Bounds: between(0, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "fil_keycenter", Kind: Note, Bounds: between(0, 127), Default: "60", Version: V1},
	{Name: "fil_random", Kind: Integer, Bounds: between(0, 9600), Default: "0", Unit: "cents", Version: V1},
	{Name: "fil_type", Kind: Enumerated, Values: []string{"lpf_1p", "hpf_1p", "lpf_2p", "hpf_2p", "bpf_2p", "brf_2p", "bpf_1p", "brf_1p", "apf_1p", "lpf_2p_sv", "hpf_2p_sv", "bpf_2p_sv", "brf_2p_sv", "pkf_2p", "lpf_4p", "hpf_4p", "lpf_6p", "hpf_6p", "comb", "pink", "lsh", "hsh", "peq"}, Default: "lpf_2p", Version: V1},
	{Name: "fil_veltrack", Kind: Integer, Bounds: between(-9600, 9600), Default: "0", Unit: "cents", Version: V1},
	{Name: "resonance", Kind: Float, Bounds: between(0, 40), Default: "0", Unit: "dB", Version: V1},
	{Name: "bend_up", Kind: Integer, Bounds: between(-9600, 9600), Default: "200", Unit: "cents", Version: V1},
	{Name: "bend_down", Kind: Integer, Bounds: between(-9600, 9600), Default: "-200", Unit: "cents", Version: V1},
	{Name: "bend_step", Kind: Integer, Bounds: between(1, 1200), Default: "1", Unit: "cents", Version: V1},
	{Name: "pitch_keycenter", Kind: Note, Bounds: between(0, 127), Default: "60", Version: V1},
	{Name: "pitch_keytrack", Kind: Integer, Bounds: between(-1200, 1200), Default: "100", Version: V1},
	{Name: "pitch_random", Kind: Integer, Bounds: between(0, 9600), Default: "0", Unit: "cents", Version: V1},
	{Name: "pitch_veltrack", Kind: Integer, Bounds: between(-9600, 9600), Default: "0", Unit: "cents", Version: V1},
	{Name: "transpose", Kind: Integer, Bounds: between(-127, 127), Default: "0", Version: V1},
	{Name: "tune", Kind: Integer, Bounds: between(-100, 100), Default: "0", Unit: "cents", Version: V1},
	{Name: "ampeg_attack", Kind: Float, Bounds: between(0.0, 100.0), Default: "0.0", Unit: "seconds", Version: V1},
	{Name: "ampeg_attackccN", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_vel2attack", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_decay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_decayccN", Kind: Float, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "ampeg_vel2decay", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_delay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_delayccN", Kind: Float, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "ampeg_vel2delay", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_hold", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_holdccN", Kind: Float, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "ampeg_vel2hold", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_release", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_releaseccN", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_vel2release", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "ampeg_sustain", Kind: Percentage, Bounds: between(0, 100), Default: "100", Version: V1},
	{Name: "ampeg_sustainccN", Kind: Percentage, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "ampeg_vel2sustain", Kind: Percentage, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "ampeg_start", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V1},
	{Name: "ampeg_startccN", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_attack", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_vel2attack", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_decay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_vel2decay", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_delay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_vel2delay", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_depth", Kind: Integer, Bounds: between(-12000, 12000), Default: "0", Unit: "cents", Version: V1},
	{Name: "fileg_vel2depth", Kind: Integer, Bounds: between(-12000, 12000), Default: "0", Unit: "cents", Version: V1},
	{Name: "fileg_hold", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_vel2hold", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_release", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_vel2release", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fileg_start", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V1},
	{Name: "fileg_sustain", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V1},
	{Name: "fileg_vel2sustain", Kind: Percentage, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "pitcheg_attack", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_vel2attack", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_decay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_vel2decay", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_delay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_vel2delay", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_depth", Kind: Integer, Bounds: between(-12000, 12000), Default: "0", Unit: "cents", Version: V1},
	{Name: "pitcheg_vel2depth", Kind: Integer, Bounds: between(-12000, 12000), Default: "0", Unit: "cents", Version: V1},
	{Name: "pitcheg_hold", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_vel2hold", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_release", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_vel2release", Kind: Float, Bounds: between(-100, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitcheg_start", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V1},
	{Name: "pitcheg_sustain", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V1},
	{Name: "pitcheg_vel2sustain", Kind: Percentage, Bounds: between(-100, 100), Default: "0", Version: V1},
	{Name: "amplfo_delay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "amplfo_depth", Kind: Float, Bounds: between(-10, 10), Default: "0", Unit: "dB", Version: V1},
	{Name: "amplfo_depthccN", Kind: Float, Bounds: between(-10, 10), Default: "0", Unit: "dB", Version: V1},
	{Name: "amplfo_depthchanaft", Kind: Float, Bounds: between(-10, 10), Default: "0", Unit: "dB", Version: V1},
	{Name: "amplfo_depthpolyaft", Kind: Float, Bounds: between(-10, 10), Default: "0", Unit: "dB", Version: V1},
	{Name: "amplfo_fade", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "amplfo_freq", Kind: Float, Bounds: between(0, 20), Default: "0", Unit: "Hz", Version: V1},
	{Name: "amplfo_freqccN", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "amplfo_freqchanaft", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "amplfo_freqpolyaft", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "fillfo_delay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fillfo_depth", Kind: Float, Bounds: between(-1200, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "fillfo_depthccN", Kind: Float, Bounds: between(-1200, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "fillfo_depthchanaft", Kind: Float, Bounds: between(-1200, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "fillfo_depthpolyaft", Kind: Float, Bounds: between(-1200, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "fillfo_fade", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "fillfo_freq", Kind: Float, Bounds: between(0, 20), Default: "0", Unit: "Hz", Version: V1},
	{Name: "fillfo_freqccN", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "fillfo_freqchanaft", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "fillfo_freqpolyaft", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "pitchlfo_delay", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitchlfo_depth", Kind: Float, Bounds: between(-1200, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "pitchlfo_depthccN", Kind: Float, Bounds: between(-1200, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "pitchlfo_depthchanaft", Kind: Float, Bounds: between(-1200, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "pitchlfo_depthpolyaft", Kind: Float, Bounds: between(-1200, 1200), Default: "0", Unit: "cents", Version: V1},
	{Name: "pitchlfo_fade", Kind: Float, Bounds: between(0, 100), Default: "0", Unit: "seconds", Version: V1},
	{Name: "pitchlfo_freq", Kind: Float, Bounds: between(0, 20), Default: "0", Unit: "Hz", Version: V1},
	{Name: "pitchlfo_freqccN", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "pitchlfo_freqchanaft", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "pitchlfo_freqpolyaft", Kind: Float, Bounds: between(-200, 200), Default: "0", Unit: "Hz", Version: V1},
	{Name: "effect1", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V1},
	{Name: "effect2", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V1},
	{Name: "delay_samples", Kind: Integer, Bounds: between(0, 4294967295), Version: V2},
	{Name: "delay_samples_onccN", Kind: Integer, Bounds: between(0, 4294967295), Version: V2},
	{Name: "delay_beats", Kind: Float, Version: V2},
	{Name: "stop_beats", Kind: Float, Version: V2},
	{Name: "direction", Kind: Enumerated, Values: []string{"forward", "reverse"}, Default: "forward", Version: V2},
	{Name: "loop_count", Kind: Integer, Bounds: atLeast(0), Version: V2},
	{Name: "loop_crossfade", Kind: Float, Version: V2},
	{Name: "loop_type", Kind: Enumerated, Values: []string{"forward", "backward", "alternate"}, Default: "forward", Version: V2},
	{Name: "md5", Kind: FreeString, Version: V2},
	{Name: "reverse_loccN", Kind: Integer, Bounds: between(0, 127), Version: V2},
	{Name: "reverse_hiccN", Kind: Integer, Bounds: between(0, 127), Version: V2},
	{Name: "waveguide", Kind: Boolean, Version: V2},
	{Name: "default_path", Kind: Path, Version: V2},
	{Name: "note_offset", Kind: Integer, Version: V2},
	{Name: "octave_offset", Kind: Integer, Version: V2},
	{Name: "set_ccN", Kind: Integer, Bounds: between(0, 127), Version: V2},
	{Name: "polyphony", Kind: Integer, Version: V2},
	{Name: "note_polyphony", Kind: Integer, Version: V2},
	{Name: "note_selfmask", Kind: Boolean, Default: "on", Version: V2},
	{Name: "rt_dead", Kind: Boolean, Default: "off", Version: V2},
	{Name: "sostenuto_sw", Kind: Boolean, Version: V2},
	{Name: "sustain_sw", Kind: Boolean, Version: V2},
	{Name: "loprog", Kind: Integer, Bounds: between(0, 127), Default: "0", Version: V2},
	{Name: "hiprog", Kind: Integer, Bounds: between(0, 127), Default: "127", Version: V2},
	{Name: "sw_default", Kind: Note, Bounds: between(0, 127), Version: V2},
	{Name: "lotimer", Kind: Float, Version: V2},
	{Name: "hitimer", Kind: Float, Version: V2},
	{Name: "start_loccN", Kind: Integer, Bounds: between(0, 127), Default: "-1", Version: V2},
	{Name: "start_hiccN", Kind: Integer, Bounds: between(0, 127), Default: "-1", Version: V2},
	{Name: "stop_loccN", Kind: Integer, Bounds: between(0, 127), Default: "-1", Version: V2},
	{Name: "stop_hiccN", Kind: Integer, Bounds: between(0, 127), Default: "-1", Version: V2},
	{Name: "phase", Kind: Enumerated, Values: []string{"normal", "invert"}, Default: "normal", Version: V2},
	{Name: "pan_keycenter", Kind: Note, Bounds: between(0, 127), Default: "60", Version: V2},
	{Name: "pan_keytrack", Kind: Percentage, Bounds: between(-100, 100), Default: "0", Version: V2},
	{Name: "pan_veltrack", Kind: Percentage, Bounds: between(-100, 100), Default: "0", Version: V2},
	{Name: "eqN_type", Kind: Enumerated, Values: []string{"peak", "lshelf", "hshelf"}, Default: "peak", Version: V2},
	{Name: "cutoff2", Kind: Float, Bounds: between(0, 192000), Unit: "Hz", Version: V2},
	{Name: "cutoff2_onccN", Kind: Integer, Bounds: between(-9600, 9600), Default: "0", Unit: "cents", Version: V2},
	{Name: "cutoff2_curveccN", Kind: Integer, Bounds: between(0, 255), Version: V2},
	{Name: "cutoff2_smoothccN", Kind: Float, Bounds: atLeast(0), Default: "0", Unit: "ms", Version: V2},
	{Name: "cutoff2_stepccN", Kind: Integer, Bounds: atLeast(0), Default: "0", Version: V2},
	{Name: "fil2_keycenter", Kind: Note, Bounds: between(0, 127), Default: "60", Version: V2},
	{Name: "fil2_keytrack", Kind: Integer, Bounds: between(0, 1200), Default: "0", Unit: "cents", Version: V2},
	{Name: "fil2_type", Kind: Enumerated, Values: []string{"lpf_1p", "hpf_1p", "lpf_2p", "hpf_2p", "bpf_2p", "brf_2p", "bpf_1p", "brf_1p", "apf_1p", "lpf_2p_sv", "hpf_2p_sv", "bpf_2p_sv", "brf_2p_sv", "pkf_2p", "lpf_4p", "hpf_4p", "lpf_6p", "hpf_6p", "comb", "pink"}, Default: "lpf_2p", Version: V2},
	{Name: "fil2_veltrack", Kind: Integer, Bounds: between(-9600, 9600), Default: "0", Unit: "cents", Version: V2},
	{Name: "resonance2", Kind: Float, Bounds: between(0, 40), Default: "0", Unit: "dB", Version: V2},
	{Name: "resonance2_onccN", Kind: Float, Bounds: between(0, 40), Default: "0", Unit: "dB", Version: V2},
	{Name: "resonance2_curveccN", Kind: Integer, Bounds: between(0, 255), Version: V2},
	{Name: "resonance2_smoothccN", Kind: Float, Bounds: atLeast(0), Default: "0", Unit: "ms", Version: V2},
	{Name: "resonance2_stepccN", Kind: Integer, Bounds: atLeast(0), Default: "0", Version: V2},
	{Name: "bend_smooth", Kind: Float, Bounds: atLeast(0), Default: "0", Unit: "ms", Version: V2},
	{Name: "bend_stepup", Kind: Integer, Bounds: between(1, 1200), Default: "1", Unit: "cents", Version: V2},
	{Name: "bend_stepdown", Kind: Integer, Bounds: between(1, 1200), Default: "1", Unit: "cents", Version: V2},
	{Name: "egN_points", Kind: FreeString, Version: V2},
	{Name: "egN_timeX", Kind: Float, Version: V2},
	{Name: "egN_timeX_onccY", Kind: Float, Version: V2},
	{Name: "egN_levelX", Kind: Float, Bounds: between(-1, 1), Default: "0", Version: V2},
	{Name: "egN_levelX_onccY", Kind: Float, Bounds: between(-1, 1), Default: "0", Version: V2},
	{Name: "egN_shapeX", Kind: Float, Default: "0", Version: V2},
	{Name: "egN_curveX", Kind: FreeString, Version: V2},
	{Name: "egN_sustain", Kind: FreeString, Version: V2},
	{Name: "egN_loop", Kind: FreeString, Version: V2},
	{Name: "egN_loop_count", Kind: FreeString, Version: V2},
	{Name: "egN_volume", Kind: FreeString, Version: V2},
	{Name: "egN_volume_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_amplitude", Kind: FreeString, Version: V2},
	{Name: "egN_amplitude_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_pan", Kind: FreeString, Version: V2},
	{Name: "egN_pan_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_width", Kind: FreeString, Version: V2},
	{Name: "egN_width_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_pan_curve", Kind: FreeString, Version: V2},
	{Name: "egN_pan_curveccX", Kind: FreeString, Version: V2},
	{Name: "egN_freq_lfoX", Kind: FreeString, Version: V2},
	{Name: "egN_depth_lfoX", Kind: FreeString, Version: V2},
	{Name: "egN_depthadd_lfoX", Kind: FreeString, Version: V2},
	{Name: "egN_pitch", Kind: FreeString, Version: V2},
	{Name: "egN_pitch_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_cutoff", Kind: FreeString, Version: V2},
	{Name: "egN_cutoff_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_cutoff2", Kind: FreeString, Version: V2},
	{Name: "egN_cutoff2_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_resonance", Kind: FreeString, Version: V2},
	{Name: "egN_resonance_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_resonance2", Kind: FreeString, Version: V2},
	{Name: "egN_resonance2_onccX", Kind: FreeString, Version: V2},
	{Name: "egN_eqXfreq", Kind: FreeString, Version: V2},
	{Name: "egN_eqXfreq_onccY", Kind: FreeString, Version: V2},
	{Name: "egN_eqXbw", Kind: FreeString, Version: V2},
	{Name: "egN_eqXbw_onccY", Kind: FreeString, Version: V2},
	{Name: "egN_eqXgain", Kind: FreeString, Version: V2},
	{Name: "egN_eqXgain_onccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_freq", Kind: Float, Version: V2},
	{Name: "lfoN_freq_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_freq_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_freq_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_delay", Kind: Float, Default: "0", Version: V2},
	{Name: "lfoN_delay_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_fade", Kind: Float, Version: V2},
	{Name: "lfoN_fade_onccX", Kind: Float, Version: V2},
	{Name: "lfoN_phase", Kind: Float, Bounds: between(0, 1), Default: "0", Version: V2},
	{Name: "lfoN_phase_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_count", Kind: Integer, Version: V2},
	{Name: "lfoN_wave", Kind: Integer, Version: V2},
	{Name: "lfoN_steps", Kind: Integer, Version: V2},
	{Name: "lfoN_stepX", Kind: Percentage, Bounds: between(-100, 100), Version: V2},
	{Name: "lfoN_stepX_onccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_smooth", Kind: FreeString, Version: V2},
	{Name: "lfoN_smooth_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_volume", Kind: FreeString, Version: V2},
	{Name: "lfoN_volume_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_volume_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_volume_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_amplitude", Kind: FreeString, Version: V2},
	{Name: "lfoN_amplitude_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_amplitude_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_amplitude_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_pan", Kind: FreeString, Version: V2},
	{Name: "lfoN_pan_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_pan_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_pan_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_width", Kind: FreeString, Version: V2},
	{Name: "lfoN_width_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_width_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_width_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_freq_lfoX", Kind: FreeString, Version: V2},
	{Name: "lfoN_depth_lfoX", Kind: FreeString, Version: V2},
	{Name: "lfoN_depthadd_lfoX", Kind: FreeString, Version: V2},
	{Name: "lfoN_pitch", Kind: FreeString, Version: V2},
	{Name: "lfoN_pitch_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_pitch_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_pitch_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_cutoff", Kind: FreeString, Version: V2},
	{Name: "lfoN_cutoff_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_cutoff_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_cutoff_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_cutoff2", Kind: FreeString, Version: V2},
	{Name: "lfoN_cutoff2_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_cutoff2_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_cutoff2_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_resonance", Kind: FreeString, Version: V2},
	{Name: "lfoN_resonance_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_resonance_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_resonance_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_resonance2", Kind: FreeString, Version: V2},
	{Name: "lfoN_resonance2_onccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_resonance2_smoothccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_resonance2_stepccX", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXfreq", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXfreq_onccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXfreq_smoothccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXfreq_stepccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXbw", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXbw_onccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXbw_smoothccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXbw_stepccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXgain", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXgain_onccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXgain_smoothccY", Kind: FreeString, Version: V2},
	{Name: "lfoN_eqXgain_stepccY", Kind: FreeString, Version: V2},
	{Name: "vN", Kind: Float, Bounds: between(-1, 1), Version: V2},
	{Name: "bus", Kind: Enumerated, Values: []string{"main", "aux1", "aux2", "aux3", "aux4", "aux5", "aux6", "aux7", "aux8", "fx1", "fx2", "fx3", "fx4", "midi"}, Default: "main", Version: V2},
	{Name: "type", Kind: FreeString, Version: V2},
	{Name: "effect3", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V2},
	{Name: "effect4", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: V2},
	{Name: "label_ccN", Kind: FreeString, Version: ARIA},
	{Name: "include", Kind: FreeString, Version: ARIA},
	{Name: "set_hdccN", Kind: Float, Bounds: between(0, 1), Version: ARIA},
	{Name: "sw_note_offset", Kind: Integer, Version: ARIA},
	{Name: "sw_octave_offset", Kind: Integer, Version: ARIA},
	{Name: "global_label", Kind: FreeString, Version: ARIA},
	{Name: "master_label", Kind: FreeString, Version: ARIA},
	{Name: "group_label", Kind: FreeString, Version: ARIA},
	{Name: "region_label", Kind: FreeString, Version: ARIA},
	{Name: "polyphony_stealing", Kind: Integer, Version: ARIA},
	{Name: "off_curve", Kind: Integer, Bounds: between(-2, 10), Default: "10", Version: ARIA},
	{Name: "off_shape", Kind: Float, Default: "-103616", Version: ARIA},
	{Name: "off_time", Kind: Float, Default: "6", Version: ARIA},
	{Name: "polyphony_group", Kind: Integer, Bounds: between(0, 4294967295), Default: "0", Version: ARIA},
	{Name: "sostenuto_cc", Kind: Float, Bounds: between(0, 127), Default: "66", Version: ARIA},
	{Name: "sostenuto_lo", Kind: Float, Bounds: between(0, 127), Default: "0.5", Version: ARIA},
	{Name: "sustain_cc", Kind: Float, Bounds: between(0, 127), Default: "64", Version: ARIA},
	{Name: "sustain_lo", Kind: Float, Bounds: between(0, 127), Default: "0.5", Version: ARIA},
	{Name: "lohdccN", Kind: Float, Bounds: between(0, 1), Default: "0", Version: ARIA},
	{Name: "hihdccN", Kind: Float, Bounds: between(0, 1), Default: "1", Version: ARIA},
	{Name: "sw_label", Kind: FreeString, Version: ARIA},
	{Name: "sw_lolast", Kind: Note, Bounds: between(0, 127), Version: ARIA},
	{Name: "sw_hilast", Kind: Note, Bounds: between(0, 127), Version: ARIA},
	{Name: "varNN_mod", Kind: Enumerated, Values: []string{"mult", "add"}, Version: ARIA},
	{Name: "varNN_onccX", Kind: Float, Bounds: between(0, 1), Version: ARIA},
	{Name: "varNN_curveccX", Kind: Integer, Bounds: between(0, 255), Version: ARIA},
	{Name: "varNN_target", Kind: FreeString, Version: ARIA},
	{Name: "on_lohdccN", Kind: Float, Bounds: between(0, 1), Default: "-1", Version: ARIA},
	{Name: "on_hihdccN", Kind: Float, Bounds: between(0, 1), Default: "-1", Version: ARIA},
	{Name: "start_lohdccN", Kind: Float, Bounds: between(0, 1), Default: "-1", Version: ARIA},
	{Name: "start_hihdccN", Kind: Float, Bounds: between(0, 1), Default: "-1", Version: ARIA},
	{Name: "stop_lohdccN", Kind: Float, Bounds: between(0, 1), Default: "-1", Version: ARIA},
	{Name: "stop_hihdccN", Kind: Float, Bounds: between(0, 1), Default: "-1", Version: ARIA},
	{Name: "position_veltrack", Kind: FreeString, Version: ARIA},
	{Name: "amp_veltrack_random", Kind: FreeString, Version: ARIA},
	{Name: "amplitude", Kind: Percentage, Bounds: between(0, 100), Default: "100", Version: ARIA},
	{Name: "amplitude_onccN", Kind: Percentage, Bounds: between(0, 100), Version: ARIA},
	{Name: "amplitude_curveccN", Kind: Integer, Bounds: between(0, 255), Version: ARIA},
	{Name: "amplitude_smoothccN", Kind: FreeString, Version: ARIA},
	{Name: "global_amplitude", Kind: Percentage, Bounds: between(0, 100), Default: "100", Version: ARIA},
	{Name: "master_amplitude", Kind: Percentage, Bounds: between(0, 100), Default: "100", Version: ARIA},
	{Name: "group_amplitude", Kind: Percentage, Bounds: between(0, 100), Default: "100", Version: ARIA},
	{Name: "pan_law", Kind: Enumerated, Values: []string{"mma", "balance"}, Version: ARIA},
	{Name: "global_volume", Kind: Float, Bounds: between(-144, 6), Default: "0", Unit: "dB", Version: ARIA},
	{Name: "master_volume", Kind: Float, Bounds: between(-144, 6), Default: "0", Unit: "dB", Version: ARIA},
	{Name: "group_volume", Kind: Float, Bounds: between(-144, 6), Default: "0", Unit: "dB", Version: ARIA},
	{Name: "eqN_dynamic", Kind: Integer, Bounds: between(0, 1), Default: "0", Version: ARIA},
	{Name: "fil_gain", Kind: Float, Default: "0", Version: ARIA},
	{Name: "fil2_gain", Kind: Float, Default: "0", Version: ARIA},
	{Name: "pitch", Kind: Integer, Bounds: between(-100, 100), Default: "0", Unit: "cents", Version: ARIA},
	{Name: "ampeg_attack_shape", Kind: Float, Default: "0", Version: ARIA},
	{Name: "ampeg_decay_shape", Kind: Float, Default: "-103616", Version: ARIA},
	{Name: "ampeg_decay_zero", Kind: Integer, Bounds: between(0, 1), Default: "1", Version: ARIA},
	{Name: "ampeg_dynamic", Kind: Integer, Bounds: between(0, 1), Default: "0", Version: ARIA},
	{Name: "ampeg_release_shape", Kind: Float, Default: "-103616", Version: ARIA},
	{Name: "ampeg_release_zero", Kind: Integer, Bounds: between(0, 1), Default: "0", Version: ARIA},
	{Name: "fileg_attack_shape", Kind: Float, Default: "0", Version: ARIA},
	{Name: "fileg_decay_shape", Kind: Float, Default: "0", Version: ARIA},
	{Name: "fileg_decay_zero", Kind: Integer, Bounds: between(0, 1), Default: "1", Version: ARIA},
	{Name: "fileg_release_shape", Kind: Float, Default: "0", Version: ARIA},
	{Name: "fileg_release_zero", Kind: Integer, Bounds: between(0, 1), Default: "0", Version: ARIA},
	{Name: "fileg_dynamic", Kind: Integer, Bounds: between(0, 1), Default: "0", Version: ARIA},
	{Name: "pitcheg_attack_shape", Kind: Float, Default: "0", Version: ARIA},
	{Name: "pitcheg_decay_shape", Kind: Float, Default: "0", Version: ARIA},
	{Name: "pitcheg_decay_zero", Kind: Integer, Bounds: between(0, 1), Default: "1", Version: ARIA},
	{Name: "pitcheg_release_shape", Kind: Float, Default: "0", Version: ARIA},
	{Name: "pitcheg_release_zero", Kind: Integer, Bounds: between(0, 1), Default: "0", Version: ARIA},
	{Name: "pitcheg_dynamic", Kind: Integer, Bounds: between(0, 1), Default: "0", Version: ARIA},
	{Name: "egN_ampeg", Kind: FreeString, Version: ARIA},
	{Name: "lfoN_waveX", Kind: Integer, Default: "1", Version: ARIA},
	{Name: "lfoN_offset", Kind: Float, Version: ARIA},
	{Name: "lfoN_ratio", Kind: Float, Version: ARIA},
	{Name: "lfoN_scale", Kind: Float, Version: ARIA},
	{Name: "curve_index", Kind: Integer, Bounds: between(0, 255), Version: ARIA},
	{Name: "param_offset", Kind: Integer, Version: ARIA},
	{Name: "vendor_specific", Kind: FreeString, Version: ARIA},
	{Name: "noise_filter", Kind: Enumerated, Values: []string{"on", "off", "lpf_1p", "hpf_1p", "bpf_1p", "brf_1p", "apf_1p", "lpf_2p", "hpf_2p", "bpf_2p", "brf_2p", "pkf_2p", "lpf_4p", "hpf_4p", "lpf_6p", "hpf_6p", "comb", "pink"}, Version: Cakewalk},
	{Name: "noise_stereo", Kind: Boolean, Version: Cakewalk},
	{Name: "noise_level", Kind: Float, Bounds: between(-96, 24), Unit: "dB", Version: Cakewalk},
	{Name: "noise_level_onccN", Kind: Float, Bounds: between(-96, 24), Unit: "dB", Version: Cakewalk},
	{Name: "noise_level_smoothccN", Kind: Float, Bounds: atLeast(0), Default: "0", Unit: "ms", Version: Cakewalk},
	{Name: "noise_step", Kind: Integer, Bounds: between(0, 100), Version: Cakewalk},
	{Name: "noise_step_onccN", Kind: Integer, Bounds: between(0, 100), Version: Cakewalk},
	{Name: "noise_tone", Kind: Integer, Bounds: between(0, 100), Version: Cakewalk},
	{Name: "noise_tone_onccN", Kind: Integer, Bounds: between(0, 100), Version: Cakewalk},
	{Name: "egN_decim", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_decim_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_bitred", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_bitred_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_rectify", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_rectify_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_ringmod", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_ringmod_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_noiselevel", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_noiselevel_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_noisestep", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_noisestep_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_noisetone", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_noisetone_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_driveshape", Kind: FreeString, Version: Cakewalk},
	{Name: "egN_driveshape_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_decim", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_decim_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_decim_smoothccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_decim_stepccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_bitred", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_bitred_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_bitred_smoothccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_bitred_stepccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noiselevel", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noiselevel_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noiselevel_smoothccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noiselevel_stepccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noisestep", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noisestep_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noisestep_smoothccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noisestep_stepccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noisetone", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noisetone_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noisetone_smoothccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_noisetone_stepccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_drive", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_drive_onccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_drive_smoothccX", Kind: FreeString, Version: Cakewalk},
	{Name: "lfoN_drive_stepccX", Kind: FreeString, Version: Cakewalk},
	{Name: "apan_depth", Kind: FreeString, Version: Cakewalk},
	{Name: "apan_dry", Kind: FreeString, Version: Cakewalk},
	{Name: "apan_freq", Kind: Float, Version: Cakewalk},
	{Name: "apan_phase", Kind: Float, Bounds: between(0, 180), Unit: "degrees", Version: Cakewalk},
	{Name: "apan_waveform", Kind: FreeString, Version: Cakewalk},
	{Name: "apan_wet", Kind: FreeString, Version: Cakewalk},
	{Name: "bitred", Kind: FreeString, Version: Cakewalk},
	{Name: "bitred_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "bitred_curveccN", Kind: FreeString, Version: Cakewalk},
	{Name: "bitred_smoothccN", Kind: FreeString, Version: Cakewalk},
	{Name: "bitred_stepccN", Kind: FreeString, Version: Cakewalk},
	{Name: "comp_attack", Kind: Float, Version: Cakewalk},
	{Name: "comp_gain", Kind: FreeString, Version: Cakewalk},
	{Name: "comp_ratio", Kind: FreeString, Version: Cakewalk},
	{Name: "comp_release", Kind: Float, Version: Cakewalk},
	{Name: "comp_stlink", Kind: Boolean, Version: Cakewalk},
	{Name: "comp_threshold", Kind: Float, Version: Cakewalk},
	{Name: "decim", Kind: FreeString, Version: Cakewalk},
	{Name: "decim_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "decim_curveccN", Kind: FreeString, Version: Cakewalk},
	{Name: "decim_smoothccN", Kind: FreeString, Version: Cakewalk},
	{Name: "decim_stepccN", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_cutoff", Kind: Float, Version: Cakewalk},
	{Name: "delay_damphi", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_damplo", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_dry", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_feedback", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_filter", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_input", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_levelc", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_levell", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_levelr", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_lfofreq", Kind: Float, Version: Cakewalk},
	{Name: "delay_moddepth", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_mode", Kind: Enumerated, Values: []string{"detune", "chorus", "cross", "flanger", "lrc", "mod", "multimod", "panning", "ping", "rlc", "stereo", "tlcr"}, Version: Cakewalk},
	{Name: "delay_panc", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_panl", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_panr", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_resonance", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_spread", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_syncc_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_syncl_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_syncr_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_time_tap", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_timec", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_timel", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_timer", Kind: FreeString, Version: Cakewalk},
	{Name: "delay_wet", Kind: FreeString, Version: Cakewalk},
	{Name: "directtomain", Kind: Percentage, Bounds: between(0, 100), Default: "100", Version: Cakewalk},
	{Name: "disto_depth", Kind: FreeString, Version: Cakewalk},
	{Name: "disto_dry", Kind: FreeString, Version: Cakewalk},
	{Name: "disto_stages", Kind: FreeString, Version: Cakewalk},
	{Name: "disto_tone", Kind: FreeString, Version: Cakewalk},
	{Name: "disto_wet", Kind: FreeString, Version: Cakewalk},
	{Name: "eq_bw", Kind: FreeString, Version: Cakewalk},
	{Name: "eq_freq", Kind: FreeString, Version: Cakewalk},
	{Name: "eq_gain", Kind: FreeString, Version: Cakewalk},
	{Name: "eq_type", Kind: FreeString, Version: Cakewalk},
	{Name: "filter_cutoff", Kind: FreeString, Version: Cakewalk},
	{Name: "filter_resonance", Kind: FreeString, Version: Cakewalk},
	{Name: "filter_type", Kind: FreeString, Version: Cakewalk},
	{Name: "fxNtomain", Kind: Percentage, Bounds: between(0, 100), Default: "0", Version: Cakewalk},
	{Name: "gate_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "gate_attack", Kind: FreeString, Version: Cakewalk},
	{Name: "gate_release", Kind: FreeString, Version: Cakewalk},
	{Name: "gate_stlink", Kind: Boolean, Version: Cakewalk},
	{Name: "gate_threshold", Kind: FreeString, Version: Cakewalk},
	{Name: "phaser_depth", Kind: FreeString, Version: Cakewalk},
	{Name: "phaser_feedback", Kind: FreeString, Version: Cakewalk},
	{Name: "phaser_freq", Kind: Float, Version: Cakewalk},
	{Name: "phaser_phase_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "phaser_stages", Kind: FreeString, Version: Cakewalk},
	{Name: "phaser_waveform", Kind: FreeString, Version: Cakewalk},
	{Name: "phaser_wet", Kind: FreeString, Version: Cakewalk},
	{Name: "reverb_damp", Kind: FreeString, Version: Cakewalk},
	{Name: "reverb_dry", Kind: FreeString, Version: Cakewalk},
	{Name: "reverb_input", Kind: FreeString, Version: Cakewalk},
	{Name: "reverb_predelay", Kind: Float, Version: Cakewalk},
	{Name: "reverb_size", Kind: FreeString, Version: Cakewalk},
	{Name: "reverb_tone", Kind: FreeString, Version: Cakewalk},
	{Name: "reverb_type", Kind: Enumerated, Values: []string{"chamber", "large_hall", "large_room", "mid_hall", "mid_room", "small_hall", "small_room"}, Version: Cakewalk},
	{Name: "reverb_wet", Kind: FreeString, Version: Cakewalk},
	{Name: "static_cyclic_level", Kind: FreeString, Version: Cakewalk},
	{Name: "static_cyclic_time", Kind: Float, Version: Cakewalk},
	{Name: "static_filter", Kind: FreeString, Version: Cakewalk},
	{Name: "static_level", Kind: FreeString, Version: Cakewalk},
	{Name: "static_random_level", Kind: FreeString, Version: Cakewalk},
	{Name: "static_random_maxtime", Kind: Float, Version: Cakewalk},
	{Name: "static_random_mintime", Kind: Float, Version: Cakewalk},
	{Name: "static_stereo", Kind: FreeString, Version: Cakewalk},
	{Name: "static_tone", Kind: FreeString, Version: Cakewalk},
	{Name: "strings_number", Kind: FreeString, Version: Cakewalk},
	{Name: "strings_wet_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "tdfir_dry", Kind: FreeString, Version: Cakewalk},
	{Name: "tdfir_gain", Kind: FreeString, Version: Cakewalk},
	{Name: "tdfir_impulse", Kind: FreeString, Version: Cakewalk},
	{Name: "tdfir_wet", Kind: FreeString, Version: Cakewalk},
	{Name: "load_mode", Kind: Integer, Bounds: between(0, 1), Version: Cakewalk},
	{Name: "load_start", Kind: Integer, Version: Cakewalk},
	{Name: "load_end", Kind: Integer, Version: Cakewalk},
	{Name: "sample_quality", Kind: Integer, Bounds: between(1, 10), Version: Cakewalk},
	{Name: "image", Kind: FreeString, Version: Cakewalk},
	{Name: "oscillator", Kind: Boolean, Version: Cakewalk},
	{Name: "oscillator_detune", Kind: FreeString, Version: Cakewalk},
	{Name: "oscillator_detune_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "oscillator_mode", Kind: Integer, Bounds: between(0, 2), Default: "0", Version: Cakewalk},
	{Name: "oscillator_mod_depth", Kind: FreeString, Version: Cakewalk},
	{Name: "oscillator_mod_depth_onccN", Kind: FreeString, Version: Cakewalk},
	{Name: "oscillator_mod_smoothccN", Kind: FreeString, Version: Cakewalk},
	{Name: "oscillator_multi", Kind: Integer, Bounds: between(1, 9), Default: "1", Version: Cakewalk},
	{Name: "oscillator_phase", Kind: Float, Bounds: between(-1, 360), Unit: "degrees", Version: Cakewalk},
	{Name: "oscillator_quality", Kind: Integer, Bounds: between(0, 3), Version: Cakewalk},
	{Name: "oscillator_table_size", Kind: FreeString, Version: Cakewalk},
}

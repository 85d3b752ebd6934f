package electric

// Sqrt3 is the fixed √3 constant used by all three-phase relations.
const Sqrt3 = 1.7320508075688772

// AmpsSingleFromKW returns single-phase current from real power.
func AmpsSingleFromKW(kw, v, pf float64) float64 { return (1000.0 * kw) / (v * pf) }

// AmpsSingleFromKVA returns single-phase current from apparent power.
func AmpsSingleFromKVA(kva, v float64) float64 { return (1000.0 * kva) / v }

// AmpsSingleFromW returns single-phase current from real power in Watts.
func AmpsSingleFromW(w, v, pf float64) float64 { return w / (v * pf) }

// AmpsThreeFromKW returns three-phase current from real power. v is line-to-line.
func AmpsThreeFromKW(kw, v, pf float64) float64 { return (1000.0 * kw) / (Sqrt3 * v * pf) }

// AmpsThreeFromKVA returns three-phase current from apparent power. v is line-to-line.
func AmpsThreeFromKVA(kva, v float64) float64 { return (1000.0 * kva) / (Sqrt3 * v) }

// AmpsThreeFromW returns three-phase current from real power in Watts. v is line-to-line.
func AmpsThreeFromW(w, v, pf float64) float64 { return w / (Sqrt3 * v * pf) }

// KWSingle returns single-phase real power in kilowatts.
func KWSingle(v, i, pf float64) float64 { return (v * i * pf) / 1000.0 }

// KWThree returns three-phase real power in kilowatts. v is line-to-line.
func KWThree(v, i, pf float64) float64 { return (Sqrt3 * v * i * pf) / 1000.0 }

// KVASingle returns single-phase apparent power in kVA.
func KVASingle(v, i float64) float64 { return (v * i) / 1000.0 }

// KVAThree returns three-phase apparent power in kVA. v is line-to-line.
func KVAThree(v, i float64) float64 { return (Sqrt3 * v * i) / 1000.0 }

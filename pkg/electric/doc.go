// Package electric implements the closed-form power relationships used by the
// calculator. All functions are pure float64 arithmetic with no side effects.
//
// Variable conventions:
//
//	I   : current in Amps
//	V   : RMS voltage in Volts; for three-phase forms V is LINE-TO-LINE (V_LL)
//	KW  : real power in kilowatts     (W  = 1000*KW)
//	KVA : apparent power in kVA       (VA = 1000*KVA)
//	PF  : power factor, dimensionless, 0..1
//
// Single-phase:
//
//	I   = 1000*KW / (V*PF)
//	I   = 1000*KVA / V
//	I   = W / (V*PF)
//	KW  = V*I*PF / 1000
//	KVA = V*I / 1000
//
// Three-phase (balanced, line-to-line voltage):
//
//	I   = 1000*KW / (√3*V*PF)
//	I   = 1000*KVA / (√3*V)
//	I   = W / (√3*V*PF)
//	KW  = √3*V*I*PF / 1000
//	KVA = √3*V*I / 1000
//
// None of the functions guard against zero divisors. Inputs that appear as
// divisors (V, and PF in the amps direction) must be validated non-zero by
// the caller before invocation; see pkg/prompt.
package electric

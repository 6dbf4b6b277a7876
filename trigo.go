/*
Package trigo is an integer-only trigonometry library for constrained compute
environments: microcontrollers, deterministic control loops and DSP inner
loops where floating-point hardware is absent, slow or forbidden. The library
features:

  - Sine, cosine, tangent, their inverses and a CORDIC vector magnitude over
    fixed-width integers, with bit-exact, platform-independent results.
  - Quarter-wave lookup tables generated entirely at build time, so programs
    start with no table initialization and evaluate with no allocation.
  - A compile-time size/accuracy trade-off: kernels are instantiated per
    table size, from 32 to 512 entries in the standard set.

The numeric kernel lives in the trig package; trig/synth holds the table
builders and cmd/triggen regenerates the committed tables.
*/
package trigo

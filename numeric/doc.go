// Package numeric provides uniform arithmetic over the numeric
// representations a progress value may use: fixed-width integers, floats,
// arbitrary-precision integers (*big.Int) and arbitrary-precision decimals
// (decimal.Decimal).
//
// Every representation converts losslessly to decimal.Decimal, which is the
// common ground for ratios, sums across heterogeneous sources and
// forecasting. Conversions back to a fixed-width representation are range
// checked and never wrap silently.
package numeric

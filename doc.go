// Package curry compiles expressions of one variable into trees that can be
// evaluated quickly for many inputs.
//
// Expressions combine the variable x, non-negative integers, the constants e
// and pi, parentheses, and these operators, from tightest to loosest binding:
//
//	sin a, cos a, ln a   functions of one argument
//	a ^ b                exponentiation
//	a * b, a / b
//	-a, +a, ~a           negation, identity, logical not
//	a + b, a - b
//	a < b, a <= b, a > b, a >= b, a == b, a ~= b
//	a && b
//	a || b
//
// Every binary operator is left-associative, so "2^3^2" is "(2^3)^2". Because
// prefix operators bind more loosely than multiplication, "-2^2" is "-(2^2)",
// and "2*-3" is an error; write "2*(-3)". Spaces are ignored anywhere.
//
// There is no boolean type. Comparisons and logical operators produce 1 for
// true and 0 for false, and logical operators treat any nonzero value as true.
// All arithmetic is done in single precision.
//
// The names sin, cos, ln, and pi are matched without regard to case. The
// variable x, the constant e, and all operators are case-sensitive.
package curry

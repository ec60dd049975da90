// Package models defines the canonical client-side shapes of UniSwap
// resources. Backend payload variance is absorbed by package normalize;
// everything downstream of the services only sees these types.
package models

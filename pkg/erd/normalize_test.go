package erd

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no spaces", "orders", "orders"},
		{"single space", "Table A", "Table_A"},
		{"multiple spaces", "a b  c", "a_b__c"},
		{"leading and trailing", " id ", "_id_"},
		{"already normalized", "Table_A", "Table_A"},
		{"other characters untouched", "schema.t:x\"y", "schema.t:x\"y"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestTableID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"orders", "orders"},
		{"public.orders", "public__orders"},
		{"a.b.c", "a__b__c"},
		{"public__orders", "public__orders"},
	}

	for _, tt := range tests {
		if got := tableID(tt.in); got != tt.want {
			t.Errorf("tableID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

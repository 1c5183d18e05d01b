package values

import (
	"encoding/json"
	"testing"
)

func TestValue_Kinds(t *testing.T) {
	cases := []struct {
		name string
		val  Value
		kind Kind
	}{
		{"null", Null(), KindNull},
		{"bool", Bool(true), KindBool},
		{"int", Int(42), KindInt},
		{"double", Double(5.3), KindDouble},
		{"string", String("str-val"), KindString},
		{"list", List(String("a"), String("b")), KindList},
		{"struct", Struct(map[string]Value{"k": Bool(false)}), KindStruct},
	}

	for _, tc := range cases {
		if tc.val.Kind() != tc.kind {
			t.Errorf("%s: expected kind %v, got %v", tc.name, tc.kind, tc.val.Kind())
		}
	}
}

func TestValue_Accessors(t *testing.T) {
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("expected (true, true), got (%v, %v)", b, ok)
	}
	if _, ok := Bool(true).AsString(); ok {
		t.Error("expected bool not to narrow to string")
	}
	if i, ok := Int(50).AsInt(); !ok || i != 50 {
		t.Errorf("expected (50, true), got (%v, %v)", i, ok)
	}
	if d, ok := Double(5.3).AsDouble(); !ok || d != 5.3 {
		t.Errorf("expected (5.3, true), got (%v, %v)", d, ok)
	}
	if s, ok := String("str-val").AsString(); !ok || s != "str-val" {
		t.Errorf("expected (str-val, true), got (%v, %v)", s, ok)
	}
	if !Null().IsNull() {
		t.Error("expected Null to be null")
	}
	if Bool(false).IsNull() {
		t.Error("expected Bool(false) not to be null")
	}
}

func TestValue_Field(t *testing.T) {
	s := Struct(map[string]Value{"present": Null()})

	if _, ok := s.Field("absent"); ok {
		t.Error("expected absent field to report not ok")
	}
	// a field holding an explicit null is present
	if v, ok := s.Field("present"); !ok || !v.IsNull() {
		t.Errorf("expected (null, true), got (%v, %v)", v, ok)
	}
	if _, ok := Bool(true).Field("any"); ok {
		t.Error("expected Field on non-structure to report not ok")
	}
}

func TestValue_Equal_ListsAreOrderSensitive(t *testing.T) {
	a := List(String("a"), String("b"))
	b := List(String("a"), String("b"))
	c := List(String("b"), String("a"))

	if !a.Equal(b) {
		t.Error("expected identical lists to be equal")
	}
	if a.Equal(c) {
		t.Error("expected reordered lists not to be equal")
	}
}

func TestValue_Equal_Structs(t *testing.T) {
	a := Struct(map[string]Value{"x": Int(1), "y": Double(2.5)})
	b := Struct(map[string]Value{"y": Double(2.5), "x": Int(1)})
	c := Struct(map[string]Value{"x": Int(1)})

	if !a.Equal(b) {
		t.Error("expected structs with identical fields to be equal")
	}
	if a.Equal(c) {
		t.Error("expected structs with different field sets not to be equal")
	}
	if a.Equal(Struct(map[string]Value{"x": Int(1), "y": Double(3.5)})) {
		t.Error("expected structs with different field values not to be equal")
	}
}

func TestValue_Equal_DifferentKinds(t *testing.T) {
	if Int(1).Equal(Double(1)) {
		t.Error("expected int and double not to be equal")
	}
	if Null().Equal(Bool(false)) {
		t.Error("expected null and false not to be equal")
	}
	if !Null().Equal(Null()) {
		t.Error("expected null to equal null")
	}
}

func TestValue_String(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{Null(), "null"},
		{Bool(false), "false"},
		{Int(50), "50"},
		{Double(5.3), "5.3"},
		{String("str-val"), `"str-val"`},
		{List(String("a"), String("b")), `["a", "b"]`},
		{Struct(map[string]Value{"b": Int(2), "a": Int(1)}), "{a: 1, b: 2}"},
	}

	for _, tc := range cases {
		if got := tc.val.String(); got != tc.want {
			t.Errorf("String() = %s, want %s", got, tc.want)
		}
	}
}

func TestValue_Interface(t *testing.T) {
	v := Struct(map[string]Value{
		"flag": Bool(true),
		"list": List(Int(1), Null()),
	})

	got, ok := v.Interface().(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", v.Interface())
	}
	if got["flag"] != true {
		t.Errorf("expected flag true, got %v", got["flag"])
	}
	list, ok := got["list"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2-element list, got %v", got["list"])
	}
	if list[0] != int32(1) || list[1] != nil {
		t.Errorf("expected [1, nil], got %v", list)
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	v := Struct(map[string]Value{
		"s": String("a"),
		"n": Null(),
		"l": List(Int(1), Int(2)),
	})

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"l":[1,2],"n":null,"s":"a"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestStruct_CopiesFields(t *testing.T) {
	fields := map[string]Value{"k": Int(1)}
	v := Struct(fields)
	fields["k"] = Int(2)

	got, _ := v.Field("k")
	if !got.Equal(Int(1)) {
		t.Errorf("expected Value to be unaffected by caller mutation, got %s", got)
	}
}

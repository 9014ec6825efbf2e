package form

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
)

var testStatus = NewEnum("aberto",
	Option{Value: "aberto", Label: "Aberto"},
	Option{Value: "fechado", Label: "Fechado"},
)

func testSchema() *Schema {
	return MustSchema(
		Field{Name: "nome", Kind: RequiredString},
		Field{Name: "lat", Kind: RequiredNumber, Number: Float},
		Field{Name: "capacidade", Kind: OptionalNumber, Number: Int},
		Field{Name: "obs", Kind: OptionalString},
		Field{Name: "status", Kind: OptionalString, Enum: testStatus},
		Field{Name: "anonimo", Kind: OptionalBoolean},
		Field{Name: "autor", Kind: RequiredAssociation, Key: "idUsuario", OmitWhen: "anonimo"},
		Field{Name: "area", Kind: OptionalAssociation, Key: "idArea"},
	)
}

func validState() *State {
	st := NewState()
	st.SetText("nome", "Abrigo Central")
	st.SetText("lat", "-23.5")
	st.SetRef("autor", "idUsuario", "7")
	return st
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*State)
		want   Payload
	}{
		{
			name:   "minimal valid input restores defaults and drops empties",
			mutate: func(*State) {},
			want: Payload{
				"nome":    "Abrigo Central",
				"lat":     -23.5,
				"status":  "aberto",
				"anonimo": false,
				"autor":   map[string]int64{"idUsuario": 7},
			},
		},
		{
			name: "optional values are typed when present",
			mutate: func(st *State) {
				st.SetText("capacidade", " 120 ")
				st.SetText("obs", "portão lateral")
				st.SetText("status", "fechado")
				st.SetRef("area", "idArea", "3")
			},
			want: Payload{
				"nome":       "Abrigo Central",
				"lat":        -23.5,
				"capacidade": int64(120),
				"obs":        "portão lateral",
				"status":     "fechado",
				"anonimo":    false,
				"autor":      map[string]int64{"idUsuario": 7},
				"area":       map[string]int64{"idArea": 3},
			},
		},
		{
			name: "non-positive and non-numeric optional association ids are omitted",
			mutate: func(st *State) {
				st.SetRef("area", "idArea", "0")
			},
			want: Payload{
				"nome":    "Abrigo Central",
				"lat":     -23.5,
				"status":  "aberto",
				"anonimo": false,
				"autor":   map[string]int64{"idUsuario": 7},
			},
		},
		{
			name: "omit flag drops the association and waives its requirement",
			mutate: func(st *State) {
				st.SetFlag("anonimo", true)
				st.SetRef("autor", "idUsuario", "")
			},
			want: Payload{
				"nome":    "Abrigo Central",
				"lat":     -23.5,
				"status":  "aberto",
				"anonimo": true,
			},
		},
		{
			name: "omit flag wins over a filled association",
			mutate: func(st *State) {
				st.SetFlag("anonimo", true)
			},
			want: Payload{
				"nome":    "Abrigo Central",
				"lat":     -23.5,
				"status":  "aberto",
				"anonimo": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := validState()
			tt.mutate(st)

			got, err := Normalize(testSchema(), st)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*State)
		want   map[string]string
	}{
		{
			name:   "blank required string",
			mutate: func(st *State) { st.SetText("nome", "   ") },
			want:   map[string]string{"nome": domain.MsgRequired},
		},
		{
			name:   "missing required number",
			mutate: func(st *State) { st.SetText("lat", "") },
			want:   map[string]string{"lat": domain.MsgRequired},
		},
		{
			name:   "unparseable required number",
			mutate: func(st *State) { st.SetText("lat", "abc") },
			want:   map[string]string{"lat": domain.MsgInvalidNumber},
		},
		{
			name:   "infinite float is rejected",
			mutate: func(st *State) { st.SetText("lat", "Inf") },
			want:   map[string]string{"lat": domain.MsgInvalidNumber},
		},
		{
			name:   "fractional int is rejected",
			mutate: func(st *State) { st.SetText("capacidade", "1.5") },
			want:   map[string]string{"capacidade": domain.MsgInvalidNumber},
		},
		{
			name:   "value outside the enum",
			mutate: func(st *State) { st.SetText("status", "lotado") },
			want:   map[string]string{"status": domain.MsgInvalidOption},
		},
		{
			name:   "required association with zero id",
			mutate: func(st *State) { st.SetRef("autor", "idUsuario", "0") },
			want:   map[string]string{"autor": domain.MsgInvalidID},
		},
		{
			name: "all errors are collected",
			mutate: func(st *State) {
				st.SetText("nome", "")
				st.SetRef("autor", "idUsuario", "-1")
			},
			want: map[string]string{
				"nome":  domain.MsgRequired,
				"autor": domain.MsgInvalidID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := validState()
			tt.mutate(st)

			got, err := Normalize(testSchema(), st)
			if got != nil {
				t.Errorf("Normalize() payload = %v, want nil", got)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Normalize() error = %v, want ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Normalize() error type = %T, want *domain.ValidationError", err)
			}
			if diff := cmp.Diff(tt.want, verr.Fields); diff != "" {
				t.Errorf("validation fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrune(t *testing.T) {
	t.Parallel()

	schema := testSchema()
	got := Prune(schema, Payload{
		"nome":    "x",
		"obs":     "",
		"status":  "",
		"anonimo": false,
		"area":    nil,
		"extra":   "kept",
		"blank":   "",
	})

	want := Payload{
		"nome":    "x",
		"status":  "aberto",
		"anonimo": false,
		"extra":   "kept",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{in: "1", want: 1, wantOK: true},
		{in: " 42 ", want: 42, wantOK: true},
		{in: "0"},
		{in: "-3"},
		{in: ""},
		{in: "abc"},
		{in: "2.5"},
		{in: "5abc"},
		{in: "1e3"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseID(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStateFromValues(t *testing.T) {
	t.Parallel()

	schema := testSchema()

	t.Run("reads scalar, checkbox and association inputs", func(t *testing.T) {
		t.Parallel()

		st := StateFromValues(schema, url.Values{
			"nome":            {"Abrigo"},
			"lat":             {"-10"},
			"autor.idUsuario": {"5"},
			"area.idArea":     {"9"},
		})

		if got := st.Text("nome"); got != "Abrigo" {
			t.Errorf("Text(nome) = %q, want %q", got, "Abrigo")
		}
		if st.Flag("anonimo") {
			t.Error("Flag(anonimo) = true, want false for absent checkbox")
		}
		if ref, _ := st.Ref("autor"); ref != (Ref{Key: "idUsuario", ID: "5"}) {
			t.Errorf("Ref(autor) = %+v", ref)
		}
		if ref, _ := st.Ref("area"); ref.ID != "9" {
			t.Errorf("Ref(area).ID = %q, want 9", ref.ID)
		}
	})

	t.Run("checking the omit flag clears the suppressed reference", func(t *testing.T) {
		t.Parallel()

		st := StateFromValues(schema, url.Values{
			"anonimo":         {"on"},
			"autor.idUsuario": {"5"},
		})

		if !st.Flag("anonimo") {
			t.Fatal("Flag(anonimo) = false, want true")
		}
		if ref, _ := st.Ref("autor"); ref.ID != "" {
			t.Errorf("Ref(autor).ID = %q, want empty", ref.ID)
		}
	})
}

func TestStateFromRecord(t *testing.T) {
	t.Parallel()

	st := StateFromRecord(testSchema(), domain.Record{
		"nome":    "Abrigo",
		"lat":     float64(-23.5),
		"anonimo": true,
		"autor":   map[string]any{"idUsuario": float64(12)},
		"area":    nil,
	})

	if got := st.Text("lat"); got != "-23.5" {
		t.Errorf("Text(lat) = %q, want -23.5", got)
	}
	if got := st.Text("status"); got != "aberto" {
		t.Errorf("Text(status) = %q, want default aberto", got)
	}
	if !st.Flag("anonimo") {
		t.Error("Flag(anonimo) = false, want true")
	}
	if ref, _ := st.Ref("autor"); ref.ID != "12" {
		t.Errorf("Ref(autor).ID = %q, want 12", ref.ID)
	}
	if ref, ok := st.Ref("area"); !ok || ref.ID != "" || ref.Key != "idArea" {
		t.Errorf("Ref(area) = %+v, %v; want empty wrapper", ref, ok)
	}
}

func TestNormalize_StoredEnumValues(t *testing.T) {
	t.Parallel()

	loaded := func(status string) domain.Record {
		return domain.Record{
			"nome":   "Abrigo",
			"lat":    float64(-23.5),
			"status": status,
			"autor":  map[string]any{"idUsuario": float64(7)},
		}
	}

	tests := []struct {
		name   string
		state  func() *State
		want   string
		errKey string
	}{
		{
			name:  "untouched edit keeps an undeclared stored value",
			state: func() *State { return StateFromRecord(testSchema(), loaded("em_manutencao")) },
			want:  "em_manutencao",
		},
		{
			name:  "stored value in another case is a declared option",
			state: func() *State { return StateFromRecord(testSchema(), loaded("Fechado")) },
			want:  "Fechado",
		},
		{
			name: "posted form echoes the stored value",
			state: func() *State {
				return StateFromValues(testSchema(), url.Values{
					"nome":            {"Abrigo"},
					"lat":             {"-23.5"},
					"status":          {"em_manutencao"},
					"status.kept":     {"em_manutencao"},
					"autor.idUsuario": {"7"},
				})
			},
			want: "em_manutencao",
		},
		{
			name: "declared option replaces the stored value",
			state: func() *State {
				st := StateFromRecord(testSchema(), loaded("em_manutencao"))
				st.SetText("status", "aberto")
				return st
			},
			want: "aberto",
		},
		{
			name: "other undeclared values stay invalid",
			state: func() *State {
				st := StateFromRecord(testSchema(), loaded("em_manutencao"))
				st.SetText("status", "demolido")
				return st
			},
			errKey: "status",
		},
		{
			name: "kept input is ignored without a matching value",
			state: func() *State {
				return StateFromValues(testSchema(), url.Values{
					"nome":            {"Abrigo"},
					"lat":             {"-23.5"},
					"status":          {"demolido"},
					"status.kept":     {"em_manutencao"},
					"autor.idUsuario": {"7"},
				})
			},
			errKey: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Normalize(testSchema(), tt.state())
			if tt.errKey != "" {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Normalize() error = %v, want *domain.ValidationError", err)
				}
				if got := verr.Fields[tt.errKey]; got != domain.MsgInvalidOption {
					t.Errorf("Fields[%s] = %q, want %q", tt.errKey, got, domain.MsgInvalidOption)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if got := p["status"]; got != tt.want {
				t.Errorf("payload status = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSchema_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []Field
	}{
		{name: "empty name", fields: []Field{{Kind: RequiredString}}},
		{name: "unknown kind", fields: []Field{{Name: "a"}}},
		{name: "association without key", fields: []Field{{Name: "a", Kind: OptionalAssociation}}},
		{name: "duplicate", fields: []Field{{Name: "a", Kind: RequiredString}, {Name: "a", Kind: OptionalString}}},
		{name: "omit flag not boolean", fields: []Field{
			{Name: "a", Kind: RequiredString},
			{Name: "b", Kind: RequiredAssociation, Key: "id", OmitWhen: "a"},
		}},
		{name: "enum default not an option", fields: []Field{
			{Name: "a", Kind: OptionalString, Enum: NewEnum("x", Option{Value: "y"})},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewSchema(tt.fields...); err == nil {
				t.Error("NewSchema() error = nil, want error")
			}
		})
	}
}

func TestEnumLabel(t *testing.T) {
	t.Parallel()

	if got := testStatus.Label("fechado"); got != "Fechado" {
		t.Errorf("Label(fechado) = %q", got)
	}
	if got := testStatus.Label("fechado_temporariamente"); got != "Fechado temporariamente" {
		t.Errorf("Label(unknown) = %q", got)
	}
	var nilEnum *Enum
	if got := nilEnum.Label("em_analise"); got != "Em analise" {
		t.Errorf("nil Label() = %q", got)
	}
}

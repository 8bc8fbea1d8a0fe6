package diagnostic

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

// entry is the Go-declared half of the catalog: whatever an analyzer
// references by name must exist here; an unknown diagnostic name is not
// caught at compile time but makes New panic when it is emitted.
// Severity and the numeric code are part of the contract external
// callers key off of, so they live in Go, not in the editable YAML.
type entry struct {
	Code     string
	Severity Severity
	Tags     []string
}

var catalog = map[string]entry{
	"ERR_EMPTY_DEFINITION":                                 {Code: "1000", Severity: SeverityError},
	"ERR_PARSE_UNEXPECTED_TOKEN":                            {Code: "1001", Severity: SeverityError},
	"ERR_PARSE_UNEXPECTED_EOF":                              {Code: "1002", Severity: SeverityError},
	"ERR_PARSE_EXTRANEOUS_INPUT":                            {Code: "1003", Severity: SeverityError},
	"ERR_UNDECLARED_ATOM_0":                                 {Code: "1004", Severity: SeverityError},
	"ERR_INPUT_ATOM_IN_HEAD_0":                               {Code: "1005", Severity: SeverityWarning},
	"ERR_ATOM_0_ALREADY_OUTPUT":                              {Code: "1006", Severity: SeverityError},
	"ERR_NON_EXISTING_OUTPUT_0":                              {Code: "1007", Severity: SeverityError},
	"ERR_NO_BINDINGS_FOR_INPUT_0":                            {Code: "1008", Severity: SeverityWarning},
	"NO_BINDINGS_FOR_OUTPUT_0":                               {Code: "1009", Severity: SeverityHint},
	"ERR_UNUSED_ATOM":                                        {Code: "1010", Severity: SeverityWarning},
	"ANONYMOUS_VARIABLE":                                     {Code: "1011", Severity: SeverityWarning, Tags: []string{"UNUSED"}},
	"ERR_NO_VARIABLES_IN_FACT":                               {Code: "1012", Severity: SeverityError},
	"ERR_NO_EXTENSIONAL_ATOM_AS_OUTPUT":                      {Code: "1013", Severity: SeverityError},
	"ERR_BINDING_ON_UNKNOWN_ATOM":                            {Code: "1014", Severity: SeverityError},
	"ERR_CYCLE_IN_CONDITION_VARIABLES":                       {Code: "1015", Severity: SeverityError},
	"INVALID_NEGATION_POSITIVE_BODY_0":                       {Code: "1016", Severity: SeverityError},
	"ERR_KEYWORD_USED_AS_ATOM_NAME":                          {Code: "1017", Severity: SeverityError},
	"ERR_ATOM_SIGNATURE_TERMS_MISMATCH":                      {Code: "1018", Severity: SeverityError},
	"ERR_MAPPING_POSITION_MUST_BE_INDEX":                     {Code: "1019", Severity: SeverityError},
	"ERR_UNKNOWN_MAPPING_COLUMN_TYPE":                        {Code: "1020", Severity: SeverityError},
	"ERR_ANNOTATION_PARAMETERS_ARITY":                        {Code: "1021", Severity: SeverityError},
	"HINT_EGD_0_1":                                           {Code: "1022", Severity: SeverityInfo},
	"EXISTENTIAL_VARIABLE_IN_DATALOG":                        {Code: "1023", Severity: SeverityError},
	"NON_LINEAR_RULE":                                        {Code: "1024", Severity: SeverityError},
	"NON_AFRATI_LINEAR_JOIN":                                 {Code: "1025", Severity: SeverityError},
	"ERR_ATOM_NOT_IN_GUARDED_RULE":                           {Code: "1026", Severity: SeverityError},
	"ERR_ATOM_NOT_IN_FRONTIER_GUARDED_RULE":                  {Code: "1027", Severity: SeverityError},
	"ERR_ATOM_NOT_IN_WEAKLY_GUARDED_RULE":                    {Code: "1028", Severity: SeverityError},
	"ERR_ATOM_NOT_IN_WEAKLY_FRONTIER_GUARDED_RULE":           {Code: "1029", Severity: SeverityError},
	"ERR_VARIABLE_IS_UNWARDED_0":                             {Code: "1030", Severity: SeverityError},
	"ERR_VARIABLE_IS_EGD_HARMFUL_0":                           {Code: "1031", Severity: SeverityError},
	"ERR_VARIABLE_IN_TAINTED_POSITION_IS_USED_IN_FILTER_0":   {Code: "1032", Severity: SeverityError},
	"ERR_LITERAL_IN_TAINTED_POSITION":                        {Code: "1033", Severity: SeverityError},
	"ERR_CONSTANT_USED_IN_TAINTED_POSITION":                  {Code: "1034", Severity: SeverityError},
	"ERR_ATOM_NOT_VIOLATING_SHY_S1_CONDITION":                {Code: "1035", Severity: SeverityError},
	"ERR_ATOM_NOT_VIOLATING_SHY_S2_CONDITION":                {Code: "1036", Severity: SeverityError},
	"ERR_MODULE_PATH_INVALID":                                {Code: "1037", Severity: SeverityWarning},
}

//go:embed catalog.yaml
var catalogYAML []byte

type proseEntry struct {
	Message     string `yaml:"message"`
	Description string `yaml:"description"`
	Example     string `yaml:"example,omitempty"`
	Fix         string `yaml:"fix,omitempty"`
	Note        string `yaml:"note,omitempty"`
}

var prose map[string]proseEntry

func init() {
	var doc struct {
		Codes map[string]proseEntry `yaml:"codes"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		panic("diagnostic: malformed catalog.yaml: " + err.Error())
	}
	prose = doc.Codes
	for name := range catalog {
		if _, ok := prose[name]; !ok {
			panic("diagnostic: catalog.yaml missing prose for " + name)
		}
	}
}

// Lookup returns the catalog entry's numeric code and severity, so callers
// that only need those two fields do not need to synthesize a zero-valued
// Diagnostic.
func Lookup(name string) (code string, severity Severity, ok bool) {
	e, ok := catalog[name]
	return e.Code, e.Severity, ok
}

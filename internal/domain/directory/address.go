package directory

// addressFieldMapping maps the application address schema onto the field
// names the directory expects.
var addressFieldMapping = map[string]string{
	"city":    "city",
	"country": "country",
	"street1": "line1",
	"street2": "line2",
	"zipCode": "postal_code",
	"state":   "state",
}

// TranslateAddress converts an application-shaped address into the
// directory's address schema. Empty values and unrecognized keys are
// dropped; a key is present in the result only with a non-empty value.
// Nil input yields an empty map.
func TranslateAddress(address map[string]string) map[string]string {
	translated := make(map[string]string, len(address))
	for key, value := range address {
		providerKey, ok := addressFieldMapping[key]
		if !ok || value == "" {
			continue
		}
		translated[providerKey] = value
	}
	return translated
}

package lexicon

// States are the US state names recognized by the location rules
var States = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
	"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
	"Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// CompoundCities are multi-word city names that OCR glues to the next word
var CompoundCities = []string{
	"Salt Lake City", "San Francisco", "San Diego", "San Jose", "San Antonio",
	"Los Angeles", "Las Vegas", "Kansas City", "Oklahoma City", "St. Louis",
	"New Orleans", "Fort Worth", "Santa Clara", "Santa Monica", "Palo Alto",
	"Mountain View", "Redwood City", "Jersey City", "Colorado Springs",
}

// Cities are single-word city names treated as places when splitting merged
// words.
var Cities = []string{
	"Atlanta", "Austin", "Baltimore", "Boise", "Boston", "Charlotte",
	"Chicago", "Cincinnati", "Cleveland", "Columbus", "Dallas", "Denver",
	"Detroit", "Houston", "Indianapolis", "Lehi", "Logan", "Memphis", "Miami",
	"Milwaukee", "Minneapolis", "Nashville", "Ogden", "Orem", "Orlando",
	"Philadelphia", "Phoenix", "Pittsburgh", "Portland", "Provo", "Raleigh",
	"Sacramento", "Seattle", "Tampa", "Tucson",
}

// NamePrefixes are surname prefixes that legitimately precede a capital
// letter (McDonald, VanBuren).
var NamePrefixes = []string{
	"Mc", "Mac", "Van", "Von", "De", "Del", "Della", "La", "Le", "Di", "Da",
	"Du", "St", "O",
}

// CamelCaseTerms are product and company names written in CamelCase that
// must never be split.
var CamelCaseTerms = []string{
	"JavaScript", "TypeScript", "CoffeeScript", "PowerPoint", "PowerShell",
	"PowerApps", "LinkedIn", "GitHub", "GitLab", "BitBucket", "YouTube",
	"WordPress", "SharePoint", "QuickBooks", "PayPal", "FedEx", "DevOps",
	"NetSuite", "SalesForce", "HubSpot", "CloudFormation", "ServiceNow",
	"PagerDuty", "DataDog", "TensorFlow", "PyTorch", "WebSocket",
	"WebSockets", "JetBrains", "FileMaker", "DocuSign", "MailChimp",
	"SolidWorks", "AutoCad", "FinTech", "EdTech", "HealthCare", "BlackBerry",
	"DreamWeaver", "InDesign", "PhotoShop", "ReSharper", "RuboCop", "MasterCard",
	"WebLogic", "WebSphere", "SmartSheet", "ZenDesk", "FreshBooks",
	"BigQuery", "NetApp", "OpenShift", "OpenStack", "CloudWatch", "CloudFront",
	"CloudFlare", "DigitalOcean", "ElasticSearch", "LogStash", "FireBase",
	"FireStore", "SageMaker", "QuickSight", "RedShift", "NetBeans", "WebPack",
	"WebStorm", "TeamCity", "NewRelic", "SumoLogic", "SolarWinds", "OneDrive",
	"OneNote", "DropBox", "GoDaddy", "MatLab", "LabView", "SketchUp",
	"AirTable", "ClickUp", "CodeIgniter", "CorelDraw", "PageMaker", "FrameMaker",
}

// TechSuffixes are second halves that mark a CamelCase product name
// ("SnapStack", "DataOps") even when the name itself is not listed.
var TechSuffixes = []string{
	"App", "Apps", "Query", "Shift", "Stack", "Hub", "Ops", "Script", "Soft",
	"Ware", "Sphere", "Storm", "Bucket",
}

var (
	placeSet  map[string]bool
	prefixSet map[string]bool
	camelSet  map[string]bool
	suffixSet map[string]bool
)

func init() {
	placeSet = make(map[string]bool)
	for _, p := range States {
		placeSet[p] = true
	}
	for _, p := range Cities {
		placeSet[p] = true
	}
	prefixSet = make(map[string]bool, len(NamePrefixes))
	for _, p := range NamePrefixes {
		prefixSet[p] = true
	}
	camelSet = make(map[string]bool, len(CamelCaseTerms))
	for _, w := range CamelCaseTerms {
		camelSet[w] = true
	}
	suffixSet = make(map[string]bool, len(TechSuffixes))
	for _, w := range TechSuffixes {
		suffixSet[w] = true
	}
}

// IsPlace returns true if word is a known state or city name
func IsPlace(word string) bool {
	return placeSet[word]
}

// IsNamePrefix returns true if word is a surname prefix such as "Mc"
func IsNamePrefix(word string) bool {
	return prefixSet[word]
}

// IsCamelCaseTerm returns true if word is a protected CamelCase name
func IsCamelCaseTerm(word string) bool {
	return camelSet[word]
}

// IsTechSuffix returns true if word ends CamelCase product names
func IsTechSuffix(word string) bool {
	return suffixSet[word]
}

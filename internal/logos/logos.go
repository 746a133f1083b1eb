package logos

// logoByCompany is hand-maintained against the files in the logo directory.
// Keys must match the company names in the placement sheet exactly. An empty
// filename means the company is known but no logo file is on hand yet.
var logoByCompany = map[string]string{
	"CDK Global":                     "",
	"CODTECH IT SOLUTIONS":           "codtech.jfif",
	"Cognizant NPN Salesforce":       "cognizant.jfif",
	"Deloitte":                       "deloite.png",
	"Dexterity Edtech Pvt Ltd.":      "dexterity.jfif",
	"ET Creatives":                   "et creatives.png",
	"Grad Guru":                      "grad guru.png",
	"HCLTech":                        "HCL tech.jfif",
	"KeshavSoft":                     "Keshav soft.png",
	"LTIMindtree":                    "LTI mindtree.png",
	"MSsquare technologies":          "MS square.jfif",
	"Modak Analytics LLP":            "modak analtics.png",
	"Mu Sigma":                       "Mu-Sigma.jpg",
	"Nocac Ventures Pvt. Ltd.":       "NOCAC.jfif",
	"Pandora R&D Labs Pvt Ltd.":      "Pandora R&D Labs.jfif",
	"RealPage India Private Limited": "RealPage India.jpg",
	"SprintM Technologies":           "SprintM Tech.png",
	"TURTIL":                         "TURTIL.jfif",
	"The Leading Solutions":          "Leading Solutions.png",
	"Tutorac":                        "Tutorac.jfif",
	"Vijay Software Solutions":       "Vijay Software.jpeg",
}

// Resolve returns the logo filename for an exact company name, or "" when
// the company is unknown or has no logo.
func Resolve(company string) string {
	return logoByCompany[company]
}

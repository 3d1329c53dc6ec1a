package translate

// Lookup tables mapping English applicant input (uppercased) to the option
// labels the portal renders in its default Indonesian locale. The tables are
// package-private and only reachable through a Translator, which never
// mutates them.

var countryTable = map[string]string{
	"AUSTRALIA":      "AUSTRALIA",
	"AUSTRIA":        "AUSTRIA",
	"BELGIUM":        "BELGIA",
	"BRAZIL":         "BRASIL",
	"CAMBODIA":       "KAMBOJA",
	"CANADA":         "KANADA",
	"CHINA":          "TIONGKOK",
	"CZECH REPUBLIC": "REPUBLIK CEKO",
	"DENMARK":        "DENMARK",
	"EGYPT":          "MESIR",
	"FINLAND":        "FINLANDIA",
	"FRANCE":         "PRANCIS",
	"GERMANY":        "JERMAN",
	"GREECE":         "YUNANI",
	"HUNGARY":        "HONGARIA",
	"INDIA":          "INDIA",
	"IRELAND":        "IRLANDIA",
	"ITALY":          "ITALIA",
	"JAPAN":          "JEPANG",
	"MALAYSIA":       "MALAYSIA",
	"MEXICO":         "MEKSIKO",
	"MOROCCO":        "MAROKO",
	"NETHERLANDS":    "BELANDA",
	"NEW ZEALAND":    "SELANDIA BARU",
	"NORWAY":         "NORWEGIA",
	"PHILIPPINES":    "FILIPINA",
	"POLAND":         "POLANDIA",
	"PORTUGAL":       "PORTUGAL",
	"RUSSIA":         "RUSIA",
	"SAUDI ARABIA":   "ARAB SAUDI",
	"SINGAPORE":      "SINGAPURA",
	"SOUTH AFRICA":   "AFRIKA SELATAN",
	"SOUTH KOREA":    "KOREA SELATAN",
	"SPAIN":          "SPANYOL",
	"SWEDEN":         "SWEDIA",
	"SWITZERLAND":    "SWISS",
	"THAILAND":       "THAILAND",
	"TURKEY":         "TURKI",
	"UNITED KINGDOM": "INGGRIS",
	"UNITED STATES":  "AMERIKA SERIKAT",
	"USA":            "AMERIKA SERIKAT",
	"VIETNAM":        "VIETNAM",
}

var purposeTable = map[string]string{
	"HOLIDAY":    "WISATA",
	"VACATION":   "WISATA",
	"TOURISM":    "WISATA",
	"BUSINESS":   "BISNIS",
	"MEETING":    "BISNIS",
	"CONFERENCE": "BISNIS",
	"OFFICIAL":   "TUGAS PEMERINTAHAN",
	"GOVERNMENT": "TUGAS PEMERINTAHAN",
	"EDUCATION":  "PENDIDIKAN",
	"STUDY":      "PENDIDIKAN",
	"MEDICAL":    "KESEHATAN",
	"TRANSIT":    "TRANSIT",
	"WORK":       "BEKERJA",
	"EMPLOYMENT": "BEKERJA",
	"FAMILY":     "KUNJUNGAN KELUARGA",
	"VISITING":   "KUNJUNGAN KELUARGA",
	"RELIGION":   "KEAGAMAAN",
	"SPORT":      "OLAHRAGA",
}

var airportTable = map[string]string{
	"SOEKARNO-HATTA":            "SOEKARNO-HATTA (CGK)",
	"SOEKARNO HATTA":            "SOEKARNO-HATTA (CGK)",
	"CGK":                       "SOEKARNO-HATTA (CGK)",
	"JAKARTA":                   "SOEKARNO-HATTA (CGK)",
	"NGURAH RAI":                "I GUSTI NGURAH RAI (DPS)",
	"DENPASAR":                  "I GUSTI NGURAH RAI (DPS)",
	"BALI":                      "I GUSTI NGURAH RAI (DPS)",
	"DPS":                       "I GUSTI NGURAH RAI (DPS)",
	"JUANDA":                    "JUANDA (SUB)",
	"SURABAYA":                  "JUANDA (SUB)",
	"SUB":                       "JUANDA (SUB)",
	"KUALANAMU":                 "KUALANAMU (KNO)",
	"MEDAN":                     "KUALANAMU (KNO)",
	"KNO":                       "KUALANAMU (KNO)",
	"HASANUDDIN":                "SULTAN HASANUDDIN (UPG)",
	"MAKASSAR":                  "SULTAN HASANUDDIN (UPG)",
	"UPG":                       "SULTAN HASANUDDIN (UPG)",
	"YOGYAKARTA INTERNATIONAL":  "YOGYAKARTA INTERNATIONAL (YIA)",
	"YIA":                       "YOGYAKARTA INTERNATIONAL (YIA)",
	"SULTAN SYARIF KASIM II":    "SULTAN SYARIF KASIM II (PKU)",
	"PKU":                       "SULTAN SYARIF KASIM II (PKU)",
	"HANG NADIM":                "HANG NADIM (BTH)",
	"BATAM":                     "HANG NADIM (BTH)",
	"BTH":                       "HANG NADIM (BTH)",
	"SAM RATULANGI":             "SAM RATULANGI (MDC)",
	"MANADO":                    "SAM RATULANGI (MDC)",
	"MDC":                       "SAM RATULANGI (MDC)",
	"ZAINUDDIN ABDUL MADJID":    "ZAINUDDIN ABDUL MADJID (LOP)",
	"LOMBOK":                    "ZAINUDDIN ABDUL MADJID (LOP)",
	"LOP":                       "ZAINUDDIN ABDUL MADJID (LOP)",
	"SULTAN ISKANDAR MUDA":      "SULTAN ISKANDAR MUDA (BTJ)",
	"BTJ":                       "SULTAN ISKANDAR MUDA (BTJ)",
	"SEPINGGAN":                 "SULTAN AJI MUHAMMAD SULAIMAN (BPN)",
	"BALIKPAPAN":                "SULTAN AJI MUHAMMAD SULAIMAN (BPN)",
	"BPN":                       "SULTAN AJI MUHAMMAD SULAIMAN (BPN)",
	"MINANGKABAU INTERNATIONAL": "MINANGKABAU (PDG)",
	"PADANG":                    "MINANGKABAU (PDG)",
	"PDG":                       "MINANGKABAU (PDG)",
}

var transportTypeTable = map[string]string{
	"COMMERCIAL FLIGHT": "PENERBANGAN KOMERSIAL",
	"COMMERCIAL":        "PENERBANGAN KOMERSIAL",
	"SCHEDULED":         "PENERBANGAN KOMERSIAL",
	"CHARTER FLIGHT":    "PENERBANGAN CARTER",
	"CHARTER":           "PENERBANGAN CARTER",
	"PRIVATE FLIGHT":    "PENERBANGAN PRIBADI",
	"PRIVATE":           "PENERBANGAN PRIBADI",
	"CARGO":             "PESAWAT KARGO",
	"MILITARY":          "PESAWAT MILITER",
	"CRUISE SHIP":       "KAPAL PESIAR",
	"CRUISE":            "KAPAL PESIAR",
	"FERRY":             "KAPAL FERI",
	"YACHT":             "KAPAL YACHT",
	"LAND":              "DARAT",
	"BUS":               "BUS ANTAR NEGARA",
}

// Airline labels are already rendered as "CODE - NAME" in both locales, so
// the table only normalizes common free-text aliases. Name extraction for
// the search box is AirlineName's job.
var airlineTable = map[string]string{
	"GARUDA":             "GA - GARUDA INDONESIA",
	"GARUDA INDONESIA":   "GA - GARUDA INDONESIA",
	"LION AIR":           "JT - LION AIR",
	"BATIK AIR":          "ID - BATIK AIR",
	"CITILINK":           "QG - CITILINK",
	"SINGAPORE AIRLINES": "SQ - SINGAPORE AIRLINES",
	"SCOOT":              "TR - SCOOT",
	"AIRASIA":            "AK - AIRASIA",
	"MALAYSIA AIRLINES":  "MH - MALAYSIA AIRLINES",
	"QATAR AIRWAYS":      "QR - QATAR AIRWAYS",
	"EMIRATES":           "EK - EMIRATES",
	"QANTAS":             "QF - QANTAS",
	"KLM":                "KL - KLM ROYAL DUTCH AIRLINES",
	"TURKISH AIRLINES":   "TK - TURKISH AIRLINES",
	"CATHAY PACIFIC":     "CX - CATHAY PACIFIC",
	"ANA":                "NH - ALL NIPPON AIRWAYS",
	"JAL":                "JL - JAPAN AIRLINES",
	"KOREAN AIR":         "KE - KOREAN AIR",
	"CHINA AIRLINES":     "CI - CHINA AIRLINES",
	"EVA AIR":            "BR - EVA AIR",
	"THAI AIRWAYS":       "TG - THAI AIRWAYS",
	"VIETNAM AIRLINES":   "VN - VIETNAM AIRLINES",
	"CEBU PACIFIC":       "5J - CEBU PACIFIC",
	"JETSTAR":            "JQ - JETSTAR",
}

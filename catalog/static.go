package catalog

import "github.com/unicompare/unicompare-api/model"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Static returns a fresh copy of the embedded university records.
// Each call allocates a new slice so callers cannot alias the data that
// ends up inside a Catalog.
func Static() []model.University {
	records := make([]model.University, len(staticRecords))
	copy(records, staticRecords)
	return records
}

var staticRecords = []model.University{
	{
		ID: "mit", Name: "Massachusetts Institute of Technology",
		Country: "United States", City: "Cambridge", Region: "Massachusetts",
		TuitionFee: 57986, Currency: "USD", Ranking: intPtr(1), EstablishedYear: 1861,
		StudentPopulation: 11934, InternationalStudents: 33.1, AcceptanceRate: 4.1,
		GraduationRate: 94.8, EmploymentRate: 95.2,
		Programs:       []string{"Computer Science", "Engineering", "Physics", "Mathematics", "Economics"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(45146), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(104000),
		Website:     "https://www.mit.edu",
		Description: "A private research university known for rigorous science and engineering programs.",
	},
	{
		ID: "stanford", Name: "Stanford University",
		Country: "United States", City: "Stanford", Region: "California",
		TuitionFee: 58416, Currency: "USD", Ranking: intPtr(3), EstablishedYear: 1885,
		StudentPopulation: 17680, InternationalStudents: 24.5, AcceptanceRate: 3.9,
		GraduationRate: 94.1, EmploymentRate: 94.3,
		Programs:       []string{"Computer Science", "Engineering", "Business", "Medicine", "Law"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(52030), CampusType: model.CampusTypeSuburban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(101000),
		Website:     "https://www.stanford.edu",
		Description: "A private university in the heart of Silicon Valley with strong ties to the technology industry.",
	},
	{
		ID: "harvard", Name: "Harvard University",
		Country: "United States", City: "Cambridge", Region: "Massachusetts",
		TuitionFee: 54269, Currency: "USD", Ranking: intPtr(4), EstablishedYear: 1636,
		StudentPopulation: 21613, InternationalStudents: 25.9, AcceptanceRate: 3.4,
		GraduationRate: 97.0, EmploymentRate: 93.8,
		Programs:       []string{"Law", "Medicine", "Business", "Economics", "History"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(53604), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(91000),
		Website:     "https://www.harvard.edu",
		Description: "The oldest higher-education institution in the United States and a member of the Ivy League.",
	},
	{
		ID: "caltech", Name: "California Institute of Technology",
		Country: "United States", City: "Pasadena", Region: "California",
		TuitionFee: 60864, Currency: "USD", Ranking: intPtr(6), EstablishedYear: 1891,
		StudentPopulation: 2397, InternationalStudents: 29.8, AcceptanceRate: 2.7,
		GraduationRate: 93.5, EmploymentRate: 94.0,
		Programs:       []string{"Physics", "Engineering", "Computer Science", "Chemistry", "Mathematics"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(42800), CampusType: model.CampusTypeSuburban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(99000),
		Website:     "https://www.caltech.edu",
		Description: "A small, research-intensive institute focused on science and engineering.",
	},
	{
		ID: "berkeley", Name: "University of California, Berkeley",
		Country: "United States", City: "Berkeley", Region: "California",
		TuitionFee: 44115, Currency: "USD", Ranking: intPtr(10), EstablishedYear: 1868,
		StudentPopulation: 45057, InternationalStudents: 16.2, AcceptanceRate: 11.4,
		GraduationRate: 92.8, EmploymentRate: 90.5,
		Programs:       []string{"Computer Science", "Engineering", "Economics", "Biology", "Law"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(24500), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(92000),
		Website:     "https://www.berkeley.edu",
		Description: "The flagship campus of the University of California system.",
	},
	{
		ID: "oxford", Name: "University of Oxford",
		Country: "United Kingdom", City: "Oxford",
		TuitionFee: 33050, Currency: "GBP", Ranking: intPtr(2), EstablishedYear: 1096,
		StudentPopulation: 26450, InternationalStudents: 45.0, AcceptanceRate: 13.0,
		GraduationRate: 95.6, EmploymentRate: 92.1,
		Programs:       []string{"Law", "Medicine", "History", "Economics", "Physics"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(15000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(55000),
		Website:     "https://www.ox.ac.uk",
		Description: "The oldest university in the English-speaking world, organized around its colleges.",
	},
	{
		ID: "cambridge", Name: "University of Cambridge",
		Country: "United Kingdom", City: "Cambridge",
		TuitionFee: 33825, Currency: "GBP", Ranking: intPtr(5), EstablishedYear: 1209,
		StudentPopulation: 24450, InternationalStudents: 39.0, AcceptanceRate: 15.0,
		GraduationRate: 95.2, EmploymentRate: 91.7,
		Programs:       []string{"Mathematics", "Physics", "Engineering", "Law", "Medicine"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(14500), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(54000),
		Website:     "https://www.cam.ac.uk",
		Description: "A collegiate research university with eight centuries of academic tradition.",
	},
	{
		ID: "imperial", Name: "Imperial College London",
		Country: "United Kingdom", City: "London",
		TuitionFee: 37900, Currency: "GBP", Ranking: intPtr(8), EstablishedYear: 1907,
		StudentPopulation: 22445, InternationalStudents: 59.5, AcceptanceRate: 14.3,
		GraduationRate: 93.9, EmploymentRate: 93.0,
		Programs:       []string{"Engineering", "Medicine", "Computer Science", "Business", "Physics"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(12000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(52000),
		Website:     "https://www.imperial.ac.uk",
		Description: "A science-focused institution in South Kensington specializing in engineering, medicine and business.",
	},
	{
		ID: "edinburgh", Name: "University of Edinburgh",
		Country: "United Kingdom", City: "Edinburgh", Region: "Scotland",
		TuitionFee: 26500, Currency: "GBP", Ranking: intPtr(22), EstablishedYear: 1583,
		StudentPopulation: 35375, InternationalStudents: 44.0, AcceptanceRate: 40.0,
		GraduationRate: 90.1, EmploymentRate: 87.4,
		Programs:       []string{"Computer Science", "Medicine", "Law", "History", "Biology"},
		ResearchOutput: model.ResearchOutputHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(8000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(42000),
		Website:     "https://www.ed.ac.uk",
		Description: "Scotland's leading research university, spread across the historic capital.",
	},
	{
		ID: "eth-zurich", Name: "ETH Zurich",
		Country: "Switzerland", City: "Zurich",
		TuitionFee: 1460, Currency: "CHF", Ranking: intPtr(7), EstablishedYear: 1855,
		StudentPopulation: 24530, InternationalStudents: 41.0, AcceptanceRate: 27.0,
		GraduationRate: 88.0, EmploymentRate: 93.6,
		Programs:       []string{"Engineering", "Computer Science", "Physics", "Mathematics", "Architecture"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(12000), CampusType: model.CampusTypeUrban,
		HousingAvailable: false, AvgStartingSalary: floatPtr(85000),
		Website:     "https://ethz.ch",
		Description: "The Swiss Federal Institute of Technology, consistently among the strongest technical universities in Europe.",
	},
	{
		ID: "epfl", Name: "EPFL",
		Country: "Switzerland", City: "Lausanne",
		TuitionFee: 1560, Currency: "CHF", Ranking: intPtr(26), EstablishedYear: 1853,
		StudentPopulation: 12466, InternationalStudents: 61.0, AcceptanceRate: 25.0,
		GraduationRate: 86.5, EmploymentRate: 92.0,
		Programs:       []string{"Engineering", "Computer Science", "Physics", "Architecture", "Data Science"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(10000), CampusType: model.CampusTypeSuburban,
		HousingAvailable: false, AvgStartingSalary: floatPtr(82000),
		Website:     "https://www.epfl.ch",
		Description: "A cosmopolitan technical university on the shores of Lake Geneva.",
	},
	{
		ID: "tum", Name: "Technical University of Munich",
		Country: "Germany", City: "Munich", Region: "Bavaria",
		TuitionFee: 0, Currency: "EUR", Ranking: intPtr(28), EstablishedYear: 1868,
		StudentPopulation: 52931, InternationalStudents: 38.0, AcceptanceRate: 8.0,
		GraduationRate: 84.0, EmploymentRate: 91.2,
		Programs:       []string{"Engineering", "Computer Science", "Physics", "Data Science", "Chemistry"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: false,
		CampusType: model.CampusTypeUrban, HousingAvailable: false,
		AvgStartingSalary: floatPtr(58000),
		Website:           "https://www.tum.de",
		Description:       "Germany's top-ranked technical university, tuition-free for most students.",
	},
	{
		ID: "heidelberg", Name: "Heidelberg University",
		Country: "Germany", City: "Heidelberg", Region: "Baden-Wurttemberg",
		TuitionFee: 3000, Currency: "EUR", Ranking: intPtr(47), EstablishedYear: 1386,
		StudentPopulation: 28653, InternationalStudents: 20.0, AcceptanceRate: 17.0,
		GraduationRate: 82.3, EmploymentRate: 88.7,
		Programs:       []string{"Medicine", "Biology", "Physics", "Law", "History"},
		ResearchOutput: model.ResearchOutputHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(4000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(52000),
		Website:     "https://www.uni-heidelberg.de",
		Description: "Germany's oldest university, set in a castle town on the Neckar river.",
	},
	{
		ID: "sorbonne", Name: "Sorbonne University",
		Country: "France", City: "Paris",
		TuitionFee: 2770, Currency: "EUR", Ranking: intPtr(59), EstablishedYear: 1257,
		StudentPopulation: 55300, InternationalStudents: 21.0, AcceptanceRate: 35.0,
		GraduationRate: 79.8, EmploymentRate: 84.3,
		Programs:       []string{"History", "Law", "Medicine", "Physics", "Biology"},
		ResearchOutput: model.ResearchOutputHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(3500), CampusType: model.CampusTypeUrban,
		HousingAvailable: false, AvgStartingSalary: floatPtr(43000),
		Website:     "https://www.sorbonne-universite.fr",
		Description: "A historic Parisian university rebuilt from the merger of Paris-Sorbonne and Pierre-et-Marie-Curie.",
	},
	{
		ID: "toronto", Name: "University of Toronto",
		Country: "Canada", City: "Toronto", Region: "Ontario",
		TuitionFee: 58160, Currency: "CAD", Ranking: intPtr(21), EstablishedYear: 1827,
		StudentPopulation: 97678, InternationalStudents: 26.0, AcceptanceRate: 43.0,
		GraduationRate: 87.9, EmploymentRate: 89.3,
		Programs:       []string{"Computer Science", "Medicine", "Business", "Engineering", "Psychology"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(10000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(62000),
		Website:     "https://www.utoronto.ca",
		Description: "Canada's largest university, anchoring the country's biggest city.",
	},
	{
		ID: "ubc", Name: "University of British Columbia",
		Country: "Canada", City: "Vancouver", Region: "British Columbia",
		TuitionFee: 43521, Currency: "CAD", Ranking: intPtr(34), EstablishedYear: 1908,
		StudentPopulation: 66512, InternationalStudents: 28.0, AcceptanceRate: 52.4,
		GraduationRate: 85.6, EmploymentRate: 87.1,
		Programs:       []string{"Computer Science", "Biology", "Business", "Engineering", "Design"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(8500), CampusType: model.CampusTypeSuburban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(58000),
		Website:     "https://www.ubc.ca",
		Description: "A research university between mountains and ocean on Canada's west coast.",
	},
	{
		ID: "mcgill", Name: "McGill University",
		Country: "Canada", City: "Montreal", Region: "Quebec",
		TuitionFee: 50710, Currency: "CAD", Ranking: intPtr(30), EstablishedYear: 1821,
		StudentPopulation: 39513, InternationalStudents: 30.0, AcceptanceRate: 46.0,
		GraduationRate: 84.9, EmploymentRate: 86.8,
		Programs:       []string{"Medicine", "Law", "Engineering", "Psychology", "Economics"},
		ResearchOutput: model.ResearchOutputHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(7000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(56000),
		Website:     "https://www.mcgill.ca",
		Description: "A bilingual-city research university with a strongly international student body.",
	},
	{
		ID: "melbourne", Name: "University of Melbourne",
		Country: "Australia", City: "Melbourne", Region: "Victoria",
		TuitionFee: 45824, Currency: "AUD", Ranking: intPtr(14), EstablishedYear: 1853,
		StudentPopulation: 51348, InternationalStudents: 45.0, AcceptanceRate: 70.0,
		GraduationRate: 88.0, EmploymentRate: 88.9,
		Programs:       []string{"Medicine", "Law", "Business", "Biology", "Design"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(10000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(65000),
		Website:     "https://www.unimelb.edu.au",
		Description: "Australia's leading research university, in the country's cultural capital.",
	},
	{
		ID: "anu", Name: "Australian National University",
		Country: "Australia", City: "Canberra", Region: "Australian Capital Territory",
		TuitionFee: 48035, Currency: "AUD", Ranking: intPtr(32), EstablishedYear: 1946,
		StudentPopulation: 21712, InternationalStudents: 42.0, AcceptanceRate: 35.0,
		GraduationRate: 83.7, EmploymentRate: 86.2,
		Programs:       []string{"Economics", "Law", "Physics", "History", "Psychology"},
		ResearchOutput: model.ResearchOutputHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(12500), CampusType: model.CampusTypeSuburban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(63000),
		Website:     "https://www.anu.edu.au",
		Description: "Australia's national research university, purpose-built in the capital.",
	},
	{
		ID: "sydney", Name: "University of Sydney",
		Country: "Australia", City: "Sydney", Region: "New South Wales",
		TuitionFee: 49000, Currency: "AUD", Ranking: intPtr(19), EstablishedYear: 1850,
		StudentPopulation: 69248, InternationalStudents: 46.0, AcceptanceRate: 30.0,
		GraduationRate: 85.1, EmploymentRate: 87.5,
		Programs:       []string{"Medicine", "Business", "Engineering", "Law", "Architecture"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(9000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(64000),
		Website:     "https://www.sydney.edu.au",
		Description: "Australia's first university, with a sandstone campus near the harbour city's centre.",
	},
	{
		ID: "nus", Name: "National University of Singapore",
		Country: "Singapore", City: "Singapore",
		TuitionFee: 38200, Currency: "SGD", Ranking: intPtr(9), EstablishedYear: 1905,
		StudentPopulation: 38596, InternationalStudents: 27.0, AcceptanceRate: 5.0,
		GraduationRate: 91.4, EmploymentRate: 94.4,
		Programs:       []string{"Computer Science", "Business", "Engineering", "Medicine", "Data Science"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(18000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(55000),
		Website:     "https://www.nus.edu.sg",
		Description: "Asia's highest-ranked university and the flagship of Singapore's education system.",
	},
	{
		ID: "ntu", Name: "Nanyang Technological University",
		Country: "Singapore", City: "Singapore",
		TuitionFee: 36280, Currency: "SGD", Ranking: intPtr(15), EstablishedYear: 1991,
		StudentPopulation: 33963, InternationalStudents: 25.0, AcceptanceRate: 36.0,
		GraduationRate: 90.2, EmploymentRate: 93.1,
		Programs:       []string{"Engineering", "Computer Science", "Business", "Design", "Data Science"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(15000), CampusType: model.CampusTypeSuburban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(52000),
		Website:     "https://www.ntu.edu.sg",
		Description: "A young, garden-campus university with a strong engineering heritage.",
	},
	{
		ID: "tokyo", Name: "University of Tokyo",
		Country: "Japan", City: "Tokyo",
		TuitionFee: 5350, Currency: "JPY", Ranking: intPtr(23), EstablishedYear: 1877,
		StudentPopulation: 29314, InternationalStudents: 14.0, AcceptanceRate: 34.0,
		GraduationRate: 90.8, EmploymentRate: 92.4,
		Programs:       []string{"Engineering", "Medicine", "Law", "Economics", "Physics"},
		ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(6000), CampusType: model.CampusTypeUrban,
		HousingAvailable: true, AvgStartingSalary: floatPtr(42000),
		Website:     "https://www.u-tokyo.ac.jp",
		Description: "Japan's most prestigious university and a pipeline into the country's public institutions.",
	},
	{
		ID: "delft", Name: "Delft University of Technology",
		Country: "Netherlands", City: "Delft",
		TuitionFee: 18750, Currency: "EUR", Ranking: intPtr(49), EstablishedYear: 1842,
		StudentPopulation: 27080, InternationalStudents: 36.0, AcceptanceRate: 65.0,
		GraduationRate: 81.2, EmploymentRate: 90.6,
		Programs:       []string{"Engineering", "Architecture", "Computer Science", "Design", "Physics"},
		ResearchOutput: model.ResearchOutputHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(5000), CampusType: model.CampusTypeSuburban,
		HousingAvailable: false, AvgStartingSalary: floatPtr(48000),
		Website:     "https://www.tudelft.nl",
		Description: "The largest and oldest technical university in the Netherlands.",
	},
	{
		ID: "wageningen", Name: "Wageningen University & Research",
		Country: "Netherlands", City: "Wageningen",
		TuitionFee: 17600, Currency: "EUR", Ranking: nil, EstablishedYear: 1918,
		StudentPopulation: 12900, InternationalStudents: 27.0, AcceptanceRate: 75.0,
		GraduationRate: 80.4, EmploymentRate: 85.9,
		Programs:       []string{"Biology", "Chemistry", "Economics", "Data Science"},
		ResearchOutput: model.ResearchOutputHigh, ScholarshipAvailable: true,
		AvgScholarshipAmount: floatPtr(4500), CampusType: model.CampusTypeRural,
		HousingAvailable: true, AvgStartingSalary: floatPtr(41000),
		Website:     "https://www.wur.nl",
		Description: "A life-sciences specialist outside the global general rankings, set in the Dutch countryside.",
	},
	{
		ID: "iceland", Name: "University of Iceland",
		Country: "Iceland", City: "Reykjavik",
		TuitionFee: 560, Currency: "EUR", Ranking: nil, EstablishedYear: 1911,
		StudentPopulation: 13874, InternationalStudents: 13.0, AcceptanceRate: 82.0,
		GraduationRate: 72.5, EmploymentRate: 83.4,
		Programs:       []string{"Biology", "History", "Psychology", "Law"},
		ResearchOutput: model.ResearchOutputMedium, ScholarshipAvailable: false,
		CampusType: model.CampusTypeUrban, HousingAvailable: true,
		AvgStartingSalary: floatPtr(45000),
		Website:           "https://www.hi.is",
		Description:       "Iceland's national university, charging only a registration fee.",
	},
}

package constants

import "sort"

// TamilNaduDistricts maps every district of Tamil Nadu to its taluks.
// The catalog is fixed reference data: district names are unique, every
// taluk belongs to exactly one district and every list is non-empty.
var TamilNaduDistricts = map[string][]string{
	"Ariyalur": {"Ariyalur", "Andimadam", "Sendurai", "Udayarpalayam"},
	"Chengalpattu": {"Chengalpattu", "Thirukalukundram", "Tambaram", "Pallavaram", "Madurantakam"},
	"Chennai": {"Alandur", "Ambattur", "Guindy", "Madhavaram", "Sholinganallur", "Perungudi", "Tondiarpet", "Mambalam", "Royapuram", "Egmore", "Fort-Tondiarpet", "Mylapore-Triplicane", "Anna Nagar", "T. Nagar", "Adyar"},
	"Coimbatore": {"Coimbatore North", "Coimbatore South", "Pollachi", "Valparai", "Mettupalayam", "Sulur", "Madukkarai", "Anaimalai", "Kinathukadavu", "Annur"},
	"Cuddalore": {"Cuddalore", "Chidambaram", "Kattumannarkoil", "Kurinjipadi", "Panruti", "Veppur", "Virudhachalam", "Tittakudi", "Bhuvanagiri"},
	"Dharmapuri": {"Dharmapuri", "Harur", "Karimangalam", "Palacode", "Pennagaram", "Pappireddipatti"},
	"Dindigul": {"Dindigul East", "Dindigul West", "Guziliyamparai", "Natham", "Nilakottai", "Oddanchatram", "Palani", "Vedasandur", "Athoor"},
	"Erode": {"Erode", "Anthiyur", "Bhavani", "Gobichettipalayam", "Kodumudi", "Modakkurichi", "Perundurai", "Sathyamangalam", "Thalavadi", "Ammapettai"},
	"Kallakurichi": {"Kallakurichi", "Chinnaselam", "Kalvarayan Hills", "Sankarapuram", "Tirukoilur", "Ulundurpet"},
	"Kancheepuram": {"Kancheepuram", "Kundrathur", "Sriperumbudur", "Uthiramerur", "Walajabad"},
	"Kanyakumari": {"Agastheeswaram", "Kalkulam", "Thovalai", "Vilavancode"},
	"Karur": {"Karur", "Aravakurichi", "Kadavur", "Krishnarayapuram", "Kulithalai", "Manmangalam"},
	"Krishnagiri": {"Krishnagiri", "Bargur", "Denkanikottai", "Hosur", "Pochampalli", "Shoolagiri", "Uthangarai", "Veppanahalli", "Anchetti"},
	"Madurai": {"Madurai North", "Madurai South", "Kalligudi", "Melur", "Peraiyur", "Thirumangalam", "Thiruparankundram", "Usilampatti", "Vadipatti", "T. Kallupatti"},
	"Mayiladuthurai": {"Mayiladuthurai", "Kuthalam", "Sirkali", "Tharangambadi"},
	"Nagapattinam": {"Nagapattinam", "Kilvelur", "Thirukkuvalai", "Vedaranyam"},
	"Namakkal": {"Namakkal", "Kolli Hills", "Kumarapalayam", "Mohanur", "Paramathi Velur", "Rasipuram", "Senthamangalam", "Tiruchengode"},
	"Nilgiris": {"Coonoor", "Gudalur", "Kotagiri", "Kundah", "Panthalur", "Udhagamandalam (Ooty)"},
	"Perambalur": {"Perambalur", "Alathur", "Kunnam", "Veppanthattai"},
	"Pudukkottai": {"Pudukkottai", "Alangudi", "Aranthangi", "Avudaiyarkoil", "Gandarvakottai", "Illupur", "Karambakudi", "Kulathur", "Manamelkudi", "Ponnamaravathi", "Thirumayam", "Viralimalai"},
	"Ramanathapuram": {"Ramanathapuram", "Kadaladi", "Kamuthi", "Kilakarai", "Mudukulathur", "Paramakudi", "Rajasingamangalam", "Rameswaram", "Tiruvadanai"},
	"Ranipet": {"Arakkonam", "Arcot", "Nemili", "Ranipet", "Sholingur", "Walajah"},
	"Salem": {"Attur", "Edappadi", "Gangavalli", "Kadayampatti", "Mettur", "Omalur", "Pethanaickenpalayam", "Salem", "Sankari", "Vazhapadi", "Yercaud"},
	"Sivaganga": {"Sivaganga", "Devakottai", "Ilayankudi", "Kalaiyarkovil", "Karaikudi", "Manamadurai", "Singampunari", "Tirupathur", "Tirupattur"},
	"Tenkasi": {"Tenkasi", "Alangulam", "Kadayanallur", "Sankarankovil", "Shencottai", "Sivagiri", "Thiruvengadam", "Veerakeralampudur"},
	"Thanjavur": {"Thanjavur", "Budalur", "Kumbakonam", "Orathanadu", "Papanasam", "Pattukottai", "Peravurani", "Thiruvaiyaru", "Thiruvidaimarudur"},
	"Theni": {"Theni", "Andipatti", "Bodinayakkanur", "Periyakulam", "Uthamapalayam"},
	"Thoothukudi": {"Thoothukudi", "Eral", "Ettayapuram", "Kayathar", "Kovilpatti", "Ottapidaram", "Sattankulam", "Srivaikundam", "Tiruchendur", "Vilathikulam"},
	"Tiruchirappalli": {"Lalgudi", "Manachanallur", "Manapparai", "Marungapuri", "Musiri", "Srirangam", "Thottiyam", "Thuraiyur", "Tiruchirappalli (East)", "Tiruchirappalli (West)", "Tiruverumbur"},
	"Tirunelveli": {"Tirunelveli", "Ambasamudram", "Cheranmahadevi", "Manur", "Nanguneri", "Palayamkottai", "Radhapuram"},
	"Tirupathur": {"Tirupathur", "Ambur", "Natrampalli", "Vaniyambadi"},
	"Tiruppur": {"Tiruppur North", "Tiruppur South", "Avinashi", "Dharapuram", "Kangeyam", "Madathukulam", "Palladam", "Udumalpet", "Uthukuli"},
	"Tiruvallur": {"Tiruvallur", "Avadi", "Gummidipoondi", "Pallipattu", "Ponneri", "Poonamallee", "R.K. Pet", "Tiruttani", "Uthukottai"},
	"Tiruvannamalai": {"Tiruvannamalai", "Arni", "Chengam", "Chetpet", "Cheyyar", "Jamunamarathur", "Kalasapakkam", "Kilpennathur", "Polur", "Thandramet", "Vandavasi", "Vembakkam"},
	"Tiruvarur": {"Tiruvarur", "Kudavasal", "Koothanallur", "Mannargudi", "Nannilam", "Needamangalam", "Thiruthuraipoondi", "Valangaiman"},
	"Vellore": {"Vellore", "Aanicuts", "Gudiyatham", "K V Kuppam", "Katpadi", "Pernambut"},
	"Viluppuram": {"Viluppuram", "Gingee", "Kandachipuram", "Marakkanam", "Melmalaiyanur", "Thiruvennainallur", "Tindivanam", "Vanur", "Vikravandi"},
	"Virudhunagar": {"Virudhunagar", "Aruppukkottai", "Kariyapatti", "Rajapalayam", "Sattur", "Sivakasi", "Srivilliputhur", "Tiruchuli", "Vembakottai", "Watrap"},
}

// Districts returns the catalog's district names in alphabetical order.
func Districts() []string {
	names := make([]string, 0, len(TamilNaduDistricts))
	for name := range TamilNaduDistricts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubdistrictsOf returns the ordered taluk list of a district, or an empty
// list for an unknown district. The result is a copy; the catalog itself is
// never mutated.
func SubdistrictsOf(district string) []string {
	taluks, ok := TamilNaduDistricts[district]
	if !ok {
		return []string{}
	}
	return append([]string{}, taluks...)
}

package compass

// orientationDescriptions is keyed by Orientation labels.
var orientationDescriptions = map[string]string{
	"Puternic Centralizat-Puternic Bun Privat":
		"Cred într-o abordare foarte centralizată a criptomonedelor, cu control puternic din partea autorităților. Valorez criptomonedele în principal pentru crearea de avere și inovație tehnologică, subliniind necesitatea reglementării pentru a menține stabilitatea și securitatea.",
	"Puternic Centralizat-Moderat Bun Privat":
		"Susțin o abordare foarte centralizată a criptomonedelor, cu o viziune echilibrată asupra beneficiilor private și publice. Recunosc potențialul pentru profit și avansare tehnologică, dar înțeleg și importanța considerațiilor sociale și de mediu.",
	"Puternic Centralizat-Moderat Bun Public":
		"Favorez o abordare foarte centralizată a criptomonedelor cu accent pe beneficiile publice. Cred că autoritățile centrale ar trebui să asigure utilizarea responsabilă a monedelor digitale pentru a promova obiectivele sociale și de mediu.",
	"Puternic Centralizat-Puternic Bun Public":
		"Pledez pentru o abordare foarte centralizată a criptomonedelor cu un accent puternic pe potențialul lor de a servi binelui public. Susțin implicarea activă a guvernului pentru a asigura că criptomonedele abordează preocupările societății și beneficiază o gamă largă de oameni.",
	"Moderat Centralizat-Puternic Bun Privat":
		"Prefer un nivel moderat de centralizare cu un accent puternic pe profit și avansare tehnologică. Recunosc necesitatea unor reglementări, dar valorez importanța descentralizării pentru inovație și competiție.",
	"Moderat Centralizat-Moderat Bun Privat":
		"Susțin o abordare echilibrată atât pentru centralizare, cât și pentru aspectele private/publice ale criptomonedelor. Recunosc importanța profitului și a impactului social și valorez un mix de abordări centralizate și descentralizate.",
	"Moderat Centralizat-Moderat Bun Public":
		"Favorez centralizarea moderată cu o viziune echilibrată asupra beneficiilor publice și private. Prioritizez impactul social și preocupările de mediu, recunoscând în același timp importanța profitului și a avansării tehnologice.",
	"Moderat Centralizat-Puternic Bun Public":
		"Susțin centralizarea moderată cu accent pe beneficiile publice. Cred că o anumită implicare guvernamentală este necesară pentru a asigura că criptomonedele beneficiază o gamă mai largă de oameni și abordează preocupările societății.",
	"Moderat Descentralizat-Puternic Bun Privat":
		"Favorez moderat descentralizarea cu un accent puternic pe profit și avansare tehnologică. Valorez sistemele fără permisiuni, confidențialitatea și mediile fără încredere, recunoscând în același timp necesitatea unei anumite centralizări.",
	"Moderat Descentralizat-Moderat Bun Privat":
		"Susțin descentralizarea moderată cu o viziune echilibrată asupra beneficiilor private și publice. Recunosc importanța atât a profitului, cât și a impactului social și valorez sistemele fără permisiuni și confidențialitate.",
	"Moderat Descentralizat-Moderat Bun Public":
		"Favorez descentralizarea moderată cu o viziune echilibrată asupra beneficiilor publice și private. Prioritizez impactul social și preocupările de mediu, recunoscând în același timp importanța profitului și a avansării tehnologice.",
	"Moderat Descentralizat-Puternic Bun Public":
		"Susțin descentralizarea moderată cu accent pe beneficiile publice. Cred că sistemele descentralizate pot aborda preocupările societății și pot beneficia o gamă mai largă de oameni.",
	"Puternic Descentralizat-Puternic Bun Privat":
		"Favorez puternic descentralizarea cu accent pe profit și avansare tehnologică. Susțin sistemele fără permisiuni, confidențialitatea și mediile fără încredere și mă pot opune implicării guvernului.",
	"Puternic Descentralizat-Moderat Bun Privat":
		"Susțin puternic descentralizarea cu o viziune echilibrată asupra beneficiilor private și publice. Valorez sistemele fără permisiuni și confidențialitatea, recunoscând în același timp importanța considerațiilor sociale și de mediu.",
	"Puternic Descentralizat-Moderat Bun Public":
		"Favorez puternic descentralizarea cu o viziune echilibrată asupra beneficiilor publice și private. Prioritizez impactul social și preocupările de mediu, recunoscând în același timp importanța profitului într-un mediu descentralizat.",
	"Puternic Descentralizat-Puternic Bun Public":
		"Susțin puternic descentralizarea cu accent pe beneficiile publice. Cred că sistemele fără permisiuni și confidențialitatea sunt esențiale pentru realizarea incluziunii financiare, sustenabilității mediului și împuternicirii sociale.",
}

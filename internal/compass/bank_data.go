package compass

import "crypto_compass_backend/internal/model"

var centralizationQuestions = []model.Question{
	{ID: "c1", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Este crucial să verificăm identitatea utilizatorilor în tranzacțiile crypto pentru a preveni spălarea de bani și activitățile criminale."},
	{ID: "c2", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized,
		Text: "Confidențialitatea și anonimatul ar trebui prioritizate față de verificarea identității în tranzacțiile crypto."},
	{ID: "c3", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized,
		Text: "Descentralizarea ar trebui prioritizată față de scalabilitate în tehnologia blockchain."},
	{ID: "c4", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Prefer soluții blockchain de înaltă performanță și scalabile, chiar dacă sacrifică o parte din descentralizare."},
	{ID: "c5", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized,
		Text: "Platformele de criptomonede ar trebui să fie deschise și accesibile tuturor, fără a necesita criterii sau aprobare specifice."},
	{ID: "c6", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Susțin sistemele de criptomonede cu permisiuni care au un set de reguli și criterii pentru participare."},
	{ID: "c7", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Măsurile de securitate puternice ar trebui prioritizate, chiar dacă rezultă într-o experiență de utilizare mai complexă."},
	{ID: "c8", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized,
		Text: "Prefer experiențe de utilizare mai simple în criptomonede, chiar dacă măsurile de securitate pot fi mai puțin riguroase."},
	{ID: "c9", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized,
		Text: "Sistemele descentralizate, fără încredere, sunt mai importante decât cele care necesită încredere în terțe părți sau entități centralizate."},
	{ID: "c10", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Cred că încrederea în terțe părți sau entități centralizate este necesară pentru ca sistemele de criptomonede să funcționeze eficient."},
	{ID: "c11", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Reglementarea guvernamentală a criptomonedelor este necesară pentru a proteja utilizatorii și a menține stabilitatea."},
	{ID: "c12", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized,
		Text: "Criptomonedele ar trebui să fie auto-guvernate fără interferențe din partea guvernelor sau autorităților centrale."},
	{ID: "c13", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Exchange-urile centralizate sunt mai sigure și mai fiabile decât exchange-urile descentralizate."},
	{ID: "c14", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized,
		Text: "Exchange-urile descentralizate sunt mai reziliente și se aliniază mai bine cu principiile criptomonedelor."},
	{ID: "c15", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Dezvoltarea tehnologiei blockchain ar trebui să fie ghidată de o autoritate centralizată."},
	{ID: "c16", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Ar trebui să existe o \"listă neagră\" globală pentru adresele crypto asociate cu activități ilegale."},
	{ID: "c17", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized,
		Text: "Wallet-urile crypto ar trebui să poată fi înghețate de autorități în cazuri de urgență națională."},
	{ID: "c18", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized,
		Text: "Smart contract-urile ar trebui să fie imuabile, chiar dacă conțin bug-uri sau sunt folosite pentru fraude."},
}

var privatePublicQuestions = []model.Question{
	{ID: "p1", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Criptomonedele ar trebui să servească în principal ca mediu de schimb și token de utilitate."},
	{ID: "p2", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate,
		Text: "Criptomonedele ar trebui să funcționeze în principal ca rezervă de valoare și aur digital."},
	{ID: "p3", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Impactul asupra mediului al criptomonedelor ar trebui minimizat, chiar dacă încetinește inovația tehnologică."},
	{ID: "p4", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate,
		Text: "Avansul tehnologic în criptomonede ar trebui prioritizat față de preocupările legate de mediu."},
	{ID: "p5", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Criptomonedele ar trebui să se concentreze în principal pe incluziunea financiară și împuternicirea socială."},
	{ID: "p6", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate,
		Text: "Generarea de profit și acumularea de avere ar trebui să fie principalul focus al criptomonedelor."},
	{ID: "p7", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Criptomonedele au potențialul de a îmbunătăți semnificativ incluziunea financiară globală."},
	{ID: "p8", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Impactul asupra mediului al criptomonedelor este o preocupare majoră care ar trebui abordată."},
	{ID: "p9", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate,
		Text: "Cred că criptomonedele pot conduce la avansuri tehnologice semnificative."},
	{ID: "p10", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Criptomonedele au potențialul de a crea noi oportunități economice și de a redistribui bogăția."},
	{ID: "p11", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Proiectele de criptomonede ar trebui să prioritizeze filantropia și dezvoltarea comunității."},
	{ID: "p12", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate,
		Text: "Proiectele de criptomonede ar trebui să prioritizeze succesul comercial și profitabilitatea."},
	{ID: "p13", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Aș investi într-un proiect de criptomonede care se concentrează pe sustenabilitatea mediului în locul profiturilor potențiale."},
	{ID: "p14", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate,
		Text: "Aș investi într-un proiect de criptomonede care prioritizează profiturile potențiale față de sustenabilitatea mediului."},
	{ID: "p15", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Criptomonedele ar trebui să sprijine procesele de luare a deciziilor transparente și democratice."},
	{ID: "p16", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Protocoalele crypto ar trebui să taxeze automat tranzacțiile pentru a finanța bunuri publice."},
	{ID: "p17", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate,
		Text: "Maximizarea valorii pentru deținători ar trebui să fie singurul obiectiv al proiectelor crypto."},
	{ID: "p18", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Protocoalele DeFi ar trebui să ofere rate preferențiale pentru împrumuturi în țări sărace."},
	{ID: "p19", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate,
		Text: "Manipularea pieței crypto este parte din joc și nu ar trebui reglementată."},
	{ID: "p20", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic,
		Text: "Ar trebui să existe un venit de bază universal plătit în crypto pentru toți cetățenii lumii."},
}

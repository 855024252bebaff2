package sentiment

// Polarity lexicons for the languages without a packaged analyzer. Entries
// are review vocabulary: service, staff, waiting time, price, stock.

var germanLexicon = map[string]float64{
	"gut":            0.6,
	"super":          0.9,
	"toll":           0.8,
	"perfekt":        1.0,
	"ausgezeichnet":  0.9,
	"hervorragend":   0.9,
	"freundlich":     0.8,
	"hilfsbereit":    0.8,
	"kompetent":      0.7,
	"professionell":  0.6,
	"schnell":        0.5,
	"sauber":         0.4,
	"empfehlenswert": 0.9,
	"empfehlung":     0.7,
	"zufrieden":      0.7,
	"danke":          0.4,
	"top":            0.8,
	"schlecht":       -0.7,
	"schlimm":        -0.7,
	"schrecklich":    -0.9,
	"furchtbar":      -0.9,
	"katastrophe":    -1.0,
	"unfreundlich":   -0.8,
	"inkompetent":    -0.8,
	"unverschämt":    -0.8,
	"langsam":        -0.4,
	"teuer":          -0.4,
	"überteuert":     -0.6,
	"warten":         -0.2,
	"wartezeit":      -0.3,
	"enttäuscht":     -0.7,
	"enttäuschend":   -0.7,
	"arrogant":       -0.7,
	"unzufrieden":    -0.7,
	"nie":            -0.3,
	"geschlossen":    -0.2,
	"fehler":         -0.5,
}

var germanNegators = map[string]bool{
	"nicht":  true,
	"kein":   true,
	"keine":  true,
	"keinen": true,
}

var germanIntensifiers = map[string]float64{
	"sehr":     1.3,
	"wirklich": 1.3,
	"extrem":   1.4,
	"etwas":    0.6,
}

var frenchLexicon = map[string]float64{
	"bon":           0.6,
	"bonne":         0.6,
	"bien":          0.5,
	"excellent":     0.9,
	"excellente":    0.9,
	"parfait":       1.0,
	"parfaite":      1.0,
	"super":         0.9,
	"génial":        0.9,
	"aimable":       0.7,
	"accueillant":   0.7,
	"accueillante":  0.7,
	"souriant":      0.6,
	"souriante":     0.6,
	"compétent":     0.7,
	"compétente":    0.7,
	"professionnel": 0.6,
	"rapide":        0.5,
	"efficace":      0.6,
	"recommande":    0.8,
	"satisfait":     0.7,
	"satisfaite":    0.7,
	"merci":         0.4,
	"mauvais":       -0.7,
	"mauvaise":      -0.7,
	"horrible":      -0.9,
	"terrible":      -0.8,
	"catastrophe":   -1.0,
	"désagréable":   -0.7,
	"impoli":        -0.8,
	"impolie":       -0.8,
	"incompétent":   -0.8,
	"incompétente":  -0.8,
	"lent":          -0.4,
	"lente":         -0.4,
	"cher":          -0.4,
	"chère":         -0.4,
	"attente":       -0.3,
	"déçu":          -0.7,
	"déçue":         -0.7,
	"décevant":      -0.7,
	"arrogant":      -0.7,
	"arrogante":     -0.7,
	"erreur":        -0.5,
}

var frenchNegators = map[string]bool{
	"ne":     true,
	"pas":    true,
	"jamais": true,
	"aucun":  true,
	"aucune": true,
}

var frenchIntensifiers = map[string]float64{
	"très":      1.3,
	"vraiment":  1.3,
	"trop":      1.2,
	"tellement": 1.2,
	"peu":       0.6,
}

package consts

import (
	"fmt"
	"strings"
)

var ChCantonOfCity map[string]string

func init() {
	ChCantonOfCity = make(map[string]string)

	ChCantonOfCity["Zürich"] = "Zürich"
	ChCantonOfCity["Winterthur"] = "Zürich"
	ChCantonOfCity["Uster"] = "Zürich"
	ChCantonOfCity["Bern"] = "Bern"
	ChCantonOfCity["Biel"] = "Bern"
	ChCantonOfCity["Thun"] = "Bern"
	ChCantonOfCity["Köniz"] = "Bern"
	ChCantonOfCity["Luzern"] = "Luzern"
	ChCantonOfCity["Genève"] = "Genève"
	ChCantonOfCity["Lausanne"] = "Vaud"
	ChCantonOfCity["Montreux"] = "Vaud"
	ChCantonOfCity["Basel"] = "Basel-Stadt"
	ChCantonOfCity["Liestal"] = "Basel-Landschaft"
	ChCantonOfCity["St. Gallen"] = "St. Gallen"
	ChCantonOfCity["Fribourg"] = "Fribourg"
	ChCantonOfCity["Neuchâtel"] = "Neuchâtel"
	ChCantonOfCity["Sion"] = "Valais"
	ChCantonOfCity["Zug"] = "Zug"
	ChCantonOfCity["Chur"] = "Graubünden"
	ChCantonOfCity["Aarau"] = "Aargau"
	ChCantonOfCity["Baden"] = "Aargau"
	ChCantonOfCity["Olten"] = "Solothurn"
	ChCantonOfCity["Solothurn"] = "Solothurn"
	ChCantonOfCity["Schaffhausen"] = "Schaffhausen"
	ChCantonOfCity["Frauenfeld"] = "Thurgau"
	ChCantonOfCity["Bellinzona"] = "Ticino"
	ChCantonOfCity["Lugano"] = "Ticino"
	ChCantonOfCity["Locarno"] = "Ticino"
	ChCantonOfCity["Herisau"] = "Appenzell Ausserrhoden"
	ChCantonOfCity["Appenzell"] = "Appenzell Innerrhoden"
	ChCantonOfCity["Glarus"] = "Glarus"
	ChCantonOfCity["Schwyz"] = "Schwyz"
	ChCantonOfCity["Sarnen"] = "Obwalden"
	ChCantonOfCity["Stans"] = "Nidwalden"
	ChCantonOfCity["Altdorf"] = "Uri"
	ChCantonOfCity["Delémont"] = "Jura"
}

// ChCantonKey - convert a city name into its canton key
func ChCantonKey(city string) (string, error) {
	if canton, ok := ChCantonOfCity[city]; !ok {
		return "", fmt.Errorf("%s not exist", city)
	} else {
		return strings.Replace(strings.ToLower(canton), " ", "_", -1), nil
	}
}

// ChCanton - the canton a city belongs to
func ChCanton(city string) (string, error) {
	if canton, ok := ChCantonOfCity[city]; !ok {
		return "", fmt.Errorf("%s not exist", city)
	} else {
		return canton, nil
	}
}

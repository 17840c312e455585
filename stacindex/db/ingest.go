package db

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
	"github.com/venicegeo/landsat-stac-gen/antimeridian"
	"github.com/venicegeo/landsat-stac-gen/model"
)

// BeginIngestJobMessage is sent on a channel to start an ingest job.
const BeginIngestJobMessage = "start"

// AbortIngestJobMessage is sent on a channel to stop an in-progress job.
const AbortIngestJobMessage = "stop"

// Column names as they appear in the AWS Landsat scene list header
const (
	productIDColumn       = "productId"
	acquisitionDateColumn = "acquisitionDate"
	cloudCoverColumn      = "cloudCover"
	minLatColumn          = "min_lat"
	minLonColumn          = "min_lon"
	maxLatColumn          = "max_lat"
	maxLonColumn          = "max_lon"
	downloadURLColumn     = "download_url"
)

var sceneListColumns = []string{
	productIDColumn,
	acquisitionDateColumn,
	cloudCoverColumn,
	minLatColumn,
	minLonColumn,
	maxLatColumn,
	maxLonColumn,
	downloadURLColumn}

type jobStats struct {
	NumberAddedOrUpdated int
	NumberSkipped        int
	NumberError          int
	StartTime            time.Time
	EndTime              time.Time
	CanceledByUser       bool
}

func (stats *jobStats) String() string {
	return fmt.Sprintf(`
		Start:	%v
		End:	%v
		Canceled: %v
		#Added:		%v
		#Skipped:	%v
		#Error:		%v
		`,
		stats.StartTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.EndTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.CanceledByUser,
		stats.NumberAddedOrUpdated,
		stats.NumberSkipped,
		stats.NumberError)
}

// Ingest reads from the stream as a CSV and inserts/updates footprint records for scenes.
func (imp *Importer) Ingest(reader io.Reader, database *sql.DB, cancelChan <-chan string) (result string) {
	csvReader := csv.NewReader(reader)
	firstRow, err := csvReader.Read() //the header row
	if err != nil {
		log.Fatal("Error reading first line.")
	}

	colMap, err := newColumnMap(sceneListColumns, firstRow)
	if err != nil {
		log.Fatal("Error extracting column names.")
	}

	return imp.ingest(csvReader, colMap, database, cancelChan)
}

// ingest reads the csv file and populates the database
func (imp *Importer) ingest(
	sceneCsv *csv.Reader,
	columnMap csvColumnMap,
	database *sql.DB,
	cancelChan <-chan string) (result string) {

	//Create the prepared statement that will be used to upsert records.
	stmt, err := database.Prepare(upsertFootprintStatement)
	if err != nil {
		log.Fatal("Prepare statement failed.", err)
	}
	defer stmt.Close()

	//Create the map that allows values to be found by column name
	valueMap := columnMap.CreateValueMap()

	var rawLineValues []string
	var csvErr error
	sceneCsv.ReuseRecord = true

	var stats jobStats
	stats.StartTime = time.Now()
	lastProgressLogTime := time.Now()
	progressLogInterval := time.Duration(time.Second * 30)

CSVLoop:
	for {
		//Check whether the user has requested cancelation.
		if abort := drainMessages(cancelChan); abort {
			log.Println("Ingest job canceled by user.")
			stats.CanceledByUser = true
			break CSVLoop
		}

		//Report the status to anyone waiting for it.
		drainStatusChannel(imp.statusChan, &stats)

		//Occasionally emit progess to the log stream
		if time.Since(lastProgressLogTime) > progressLogInterval {
			log.Printf("Ingest Progress: Added:%v Skipped:%v Error:%v", stats.NumberAddedOrUpdated, stats.NumberSkipped, stats.NumberError)
			lastProgressLogTime = time.Now()
		}

		//Read a line from the CSV file.
		rawLineValues, csvErr = sceneCsv.Read()
		switch csvErr {
		case nil:
			columnMap.UpdateMap(rawLineValues, valueMap)
			record, err := footprintRecordFromSceneListValues(valueMap)
			if err != nil {
				stats.NumberError++
				log.Println("Error parsing scene list row.", err, rawLineValues)
				continue
			}
			rowsAffected, err := executeUpsert(stmt, record)
			if err != nil {
				stats.NumberError++
				log.Println("Error inserting footprint into db.", err, rawLineValues)
			} else {
				stats.NumberAddedOrUpdated += rowsAffected
				stats.NumberSkipped += (1 - rowsAffected)
			}
		case io.EOF:
			//Read to the end of the file. Exit the loop.
			break CSVLoop
		default:
			//Something went wrong reading the line from the file. Possibly formatting.
			//Just log this and move along.
			log.Println("Error reading csv line:", csvErr, rawLineValues)
			stats.NumberError++
		}
	}

	//Clear the status requests before doing the long-running operation.
	drainStatusChannel(imp.statusChan, &stats)
	doDatabaseMaintenance(database)

	stats.EndTime = time.Now()
	log.Printf("Ingest Complete: %v", stats.String())
	log.Printf("Ingest took %s", stats.EndTime.Sub(stats.StartTime))

	return fmt.Sprintf("%v", stats.String())
}

// footprintRecordFromSceneListValues builds a footprint record from one scene
// list row. The scene list only carries a lat/lon bounding box, so the stored
// footprint is that box, repaired if it straddles the antimeridian.
func footprintRecordFromSceneListValues(values map[string]string) (*FootprintRecord, error) {
	acquisitionDate, err := model.ParseSceneTime(values[acquisitionDateColumn])
	if err != nil {
		return nil, err
	}
	cloudCover, err := strconv.ParseFloat(values[cloudCoverColumn], 64)
	if err != nil {
		return nil, fmt.Errorf("bad cloud cover value `%s`: %v", values[cloudCoverColumn], err)
	}

	bounds := make([]float64, 4)
	for i, column := range []string{minLonColumn, minLatColumn, maxLonColumn, maxLatColumn} {
		if bounds[i], err = strconv.ParseFloat(values[column], 64); err != nil {
			return nil, fmt.Errorf("bad %s value `%s`: %v", column, values[column], err)
		}
	}
	minLon, minLat, maxLon, maxLat := bounds[0], bounds[1], bounds[2], bounds[3]

	ring := [][]float64{
		{minLon, minLat},
		{maxLon, minLat},
		{maxLon, maxLat},
		{minLon, maxLat},
		{minLon, minLat},
	}
	//A box straddling the antimeridian arrives with its longitudes flipped;
	//Normalize rebuilds it on a shared sign.
	ring, _, err = antimeridian.Normalize(ring)
	if err != nil {
		return nil, err
	}

	return &FootprintRecord{
		ProductID:       values[productIDColumn],
		AcquisitionDate: acquisitionDate,
		CloudCover:      cloudCover,
		SceneURLString:  values[downloadURLColumn],
		Footprint:       geojson.NewPolygon([][][]float64{ring}),
		Bbox:            geojson.BoundingBox(antimeridian.Bbox(ring)),
	}, nil
}

// drainMessages reads all the messages from the channel looking for
// any abort messages.
// All other messages will be ignored and discarded.
func drainMessages(messageChan <-chan string) (abortRequested bool) {
	abortRequested = false
	for {
		select {
		case msg := <-messageChan:
			abortRequested = abortRequested || (msg == AbortIngestJobMessage)
		default:
			return
		}
	}
}

// drainStatusChannel drains the status request channel
// and sends back a status string
func drainStatusChannel(statusChan <-chan chan string, stats *jobStats) {
	for {
		select {
		case resp := <-statusChan:
			if resp != nil {
				select {
				case resp <- fmt.Sprintf("%v\nIn progress\n%v", time.Now().Format("Mon Jan _2 15:04:05 2006"), stats.String()): //good
				default: //can't send. ignore this request.
				}
			}
		default:
			return
		}
	}
}

// doDatabaseMaintenance performs any maintenance that should be done
// after the import operation, e.g. rebuilding indexes
func doDatabaseMaintenance(database *sql.DB) {
	log.Println("Starting database maintenance.")
	_, err := database.Exec(databaseMaintenanceStatement)
	if err != nil {
		log.Println("Error during database maintenance.", err)
	}
	log.Println("Database maintenance complete.")
}

// executeUpsert submits the upsert statement to the database driver.
func executeUpsert(statement *sql.Stmt, record *FootprintRecord) (int, error) {
	footprintBytes, err := json.Marshal(record.Footprint)
	if err != nil {
		return 0, err
	}
	bboxBytes, err := json.Marshal(record.Bbox)
	if err != nil {
		return 0, err
	}

	result, err := statement.Exec(
		record.ProductID, record.AcquisitionDate, record.CloudCover, record.SceneURLString, footprintBytes, bboxBytes)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	return int(rowsAffected), err
}
